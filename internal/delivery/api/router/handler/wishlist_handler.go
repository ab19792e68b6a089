package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/api/middleware"
	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// WishlistHandler serves the caller's saved products.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler.
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// AddWishlistRequest is the body of POST /wishlist.
type AddWishlistRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// ListWishlist returns the caller's saved products.
func (h *WishlistHandler) ListWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	items, err := h.wishlistUC.ListWishlist(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// AddToWishlist saves a product for the caller.
func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	if err := h.wishlistUC.AddToWishlist(c.Request().Context(), userID, req.ProductID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveFromWishlist forgets a saved product.
func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := paramUUID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.wishlistUC.RemoveFromWishlist(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

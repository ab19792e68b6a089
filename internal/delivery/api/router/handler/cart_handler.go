package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/api/middleware"
	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/domain/constants"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart of a signed-in user or an anonymous session.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddCartItemRequest is the body of POST /cart/items.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	VariantID uuid.UUID `json:"variant_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=1,max=999"`
}

// UpdateCartItemRequest is the body of PATCH /cart/items/:id. Zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0,max=999"`
}

// cartOwner resolves whose cart the request addresses. The signed-in user wins over the session header.
func cartOwner(c echo.Context) (entity.CartOwner, bool) {
	if userID, ok := middleware.GetUserID(c); ok {
		return entity.CartOwner{UserID: &userID}, true
	}

	sessionID := c.Request().Header.Get(constants.HeaderCartSession)
	if sessionID == "" {
		return entity.CartOwner{}, true
	}
	if _, err := uuid.Parse(sessionID); err != nil {
		return entity.CartOwner{}, false
	}

	return entity.CartOwner{SessionID: sessionID}, true
}

// GetCart returns the cart with its totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	owner, ok := cartOwner(c)
	if !ok {
		return response.BadRequest(c, "INVALID_CART_SESSION", "Invalid cart session")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem puts a variant into the cart. Anonymous callers without a session get a new one
// in the X-Cart-Session response header.
func (h *CartHandler) AddItem(c echo.Context) error {
	owner, ok := cartOwner(c)
	if !ok {
		return response.BadRequest(c, "INVALID_CART_SESSION", "Invalid cart session")
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	if owner.IsZero() {
		owner.SessionID = uuid.NewString()
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), owner, &usecase.AddCartItemInput{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if owner.UserID == nil {
		c.Response().Header().Set(constants.HeaderCartSession, owner.SessionID)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateItem sets the quantity of a cart line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	owner, ok := cartOwner(c)
	if !ok {
		return response.BadRequest(c, "INVALID_CART_SESSION", "Invalid cart session")
	}

	itemID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	cart, err := h.cartUC.UpdateItemQuantity(c.Request().Context(), owner, itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem deletes a cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	owner, ok := cartOwner(c)
	if !ok {
		return response.BadRequest(c, "INVALID_CART_SESSION", "Invalid cart session")
	}

	itemID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), owner, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart removes every line of the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	owner, ok := cartOwner(c)
	if !ok {
		return response.BadRequest(c, "INVALID_CART_SESSION", "Invalid cart session")
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), owner); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/api/middleware"
	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC    usecase.OrderUsecase
	ShippingUC usecase.ShippingUsecase
	Logger     *slog.Logger
}

// OrderHandler serves checkout, shipping quotes and the caller's orders.
type OrderHandler struct {
	orderUC    usecase.OrderUsecase
	shippingUC usecase.ShippingUsecase
	logger     *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:    params.OrderUC,
		shippingUC: params.ShippingUC,
		logger:     params.Logger,
	}
}

// PlaceOrderRequest is the body of POST /orders.
type PlaceOrderRequest struct {
	AddressID    uuid.UUID       `json:"address_id" validate:"required"`
	ShippingCost decimal.Decimal `json:"shipping_cost" validate:"gte=0"`
}

// QuoteShipping prices delivery of the current cart to ?addressId=.
func (h *OrderHandler) QuoteShipping(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.QueryParam("addressId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	quote, err := h.shippingUC.QuoteShipping(c.Request().Context(), userID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// PlaceOrder checks out the caller's cart.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), userID, &usecase.PlaceOrderInput{
		AddressID:    req.AddressID,
		ShippingCost: req.ShippingCost,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListMyOrders returns the caller's orders, newest first.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var query PageQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination input")
	}

	result, err := h.orderUC.ListMyOrders(c.Request().Context(), userID, query.toPage())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paged(c, result)
}

// GetMyOrder returns one of the caller's orders.
func (h *OrderHandler) GetMyOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetMyOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CancelMyOrder cancels one of the caller's pending orders.
func (h *OrderHandler) CancelMyOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.CancelMyOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetOrderQR returns the pickup QR code of one of the caller's orders as a PNG image.
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.GetOrderQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}

package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/api/middleware"
	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AdminOrderHandlerParams holds dependencies for AdminOrderHandler, injected by Fx.
type AdminOrderHandlerParams struct {
	fx.In

	OrderAdminUC usecase.OrderAdminUsecase
	Logger       *slog.Logger
}

// AdminOrderHandler serves back-office order management and reporting.
type AdminOrderHandler struct {
	orderAdminUC usecase.OrderAdminUsecase
	logger       *slog.Logger
}

// NewAdminOrderHandler is the constructor for AdminOrderHandler.
func NewAdminOrderHandler(params AdminOrderHandlerParams) *AdminOrderHandler {
	return &AdminOrderHandler{
		orderAdminUC: params.OrderAdminUC,
		logger:       params.Logger,
	}
}

// OrderListQuery holds the filters of the back-office order listing. from and to are read separately.
type OrderListQuery struct {
	PageQuery
	Status string `query:"status"`
	UserID string `query:"user_id"`
}

// UpdateOrderStatusRequest is the body of PUT /admin/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// RefundItemRequest names an order line to restock.
type RefundItemRequest struct {
	OrderItemID uuid.UUID `json:"order_item_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"min=1"`
}

// RefundRequest is the body of POST /admin/orders/:id/refund.
type RefundRequest struct {
	Type    string               `json:"type" validate:"required,oneof=full partial"`
	Amount  *decimal.Decimal     `json:"amount"` // Required for partial refunds.
	Restock bool                 `json:"restock"`
	Reason  string               `json:"reason" validate:"max=500"`
	Items   []*RefundItemRequest `json:"items" validate:"omitempty,dive,required"`
}

// ScanQRRequest is the body of POST /admin/orders/scan.
type ScanQRRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// ListOrders returns one page of orders matching the filters.
func (h *AdminOrderHandler) ListOrders(c echo.Context) error {
	var query OrderListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order filter")
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	filter := entity.OrderFilter{
		Status: entity.OrderStatus(query.Status),
		From:   from,
		To:     to,
		Page:   query.toPage(),
	}
	if query.UserID != "" {
		userID, err := uuid.Parse(query.UserID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
		filter.UserID = &userID
	}

	result, err := h.orderAdminUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paged(c, result)
}

// GetOrder returns an order with its refunds.
func (h *AdminOrderHandler) GetOrder(c echo.Context) error {
	orderID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderAdminUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateStatus moves an order along its lifecycle.
func (h *AdminOrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	order, err := h.orderAdminUC.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Refund records a full or partial refund against a paid order.
func (h *AdminOrderHandler) Refund(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req RefundRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refund input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	items := make([]*usecase.RefundItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, &usecase.RefundItemInput{
			OrderItemID: item.OrderItemID,
			Quantity:    item.Quantity,
		})
	}

	output, err := h.orderAdminUC.Refund(c.Request().Context(), actorID, orderID, &usecase.RefundInput{
		Type:    entity.RefundType(req.Type),
		Amount:  req.Amount,
		Restock: req.Restock,
		Reason:  req.Reason,
		Items:   items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// ScanQR resolves a scanned pickup code to its order.
func (h *AdminOrderHandler) ScanQR(c echo.Context) error {
	var req ScanQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	order, err := h.orderAdminUC.ResolveQR(c.Request().Context(), req.Payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Stats returns order aggregates, optionally within from/to.
func (h *AdminOrderHandler) Stats(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	stats, err := h.orderAdminUC.Stats(c.Request().Context(), from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

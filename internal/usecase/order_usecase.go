package usecase

import (
	"context"
	"time"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderInput defines the data required to check out the user's cart.
type PlaceOrderInput struct {
	AddressID    uuid.UUID
	ShippingCost decimal.Decimal // The fee the client was quoted. Must match the server computation.
}

// RefundItemInput names an order line and how many units to restock.
type RefundItemInput struct {
	OrderItemID uuid.UUID
	Quantity    int
}

// RefundInput defines a refund request against a paid order.
type RefundInput struct {
	Type    entity.RefundType
	Amount  *decimal.Decimal // Required for partial refunds.
	Restock bool
	Reason  string
	Items   []*RefundItemInput // Required for partial refunds with restock.
}

// RefundOutput is the recorded refund and the updated order.
type RefundOutput struct {
	Refund *entity.Refund `json:"refund"`
	Order  *entity.Order  `json:"order"`
}

// OrderDetail is an order together with its refunds.
type OrderDetail struct {
	*entity.Order
	Refunds []*entity.Refund `json:"refunds"`
}

// OrderUsecase defines customer-facing order operations.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)
	ListMyOrders(ctx context.Context, userID uuid.UUID, page entity.Page) (*entity.PagedResult[*entity.Order], error)
	GetMyOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// CancelMyOrder cancels a pending order of the user and returns its stock.
	CancelMyOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// GetOrderQR renders the pickup QR code of one of the user's orders as a PNG.
	GetOrderQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
}

// OrderAdminUsecase defines back-office order operations.
type OrderAdminUsecase interface {
	ListOrders(ctx context.Context, filter entity.OrderFilter) (*entity.PagedResult[*entity.Order], error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderDetail, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	Refund(ctx context.Context, actorID, orderID uuid.UUID, input *RefundInput) (*RefundOutput, error)

	// ResolveQR returns the order a scanned pickup code points to.
	ResolveQR(ctx context.Context, payload string) (*OrderDetail, error)

	Stats(ctx context.Context, from, to *time.Time) (*entity.OrderStats, error)
}

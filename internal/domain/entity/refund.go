package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundType distinguishes full from partial refunds.
type RefundType string

const (
	RefundTypeFull    RefundType = "full"
	RefundTypePartial RefundType = "partial"
)

// IsValid checks if the refund type is a known value.
func (t RefundType) IsValid() bool {
	return t == RefundTypeFull || t == RefundTypePartial
}

// Refund is a monetary reversal recorded against a paid order.
type Refund struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	Type      RefundType      `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Restock   bool            `json:"restock"`
	Reason    string          `json:"reason,omitempty"`
	CreatedBy uuid.UUID       `json:"created_by"`
	Items     []*RefundItem   `json:"items,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// RefundItem records how many units of an order line were restocked by a refund.
type RefundItem struct {
	ID          uuid.UUID `json:"id"`
	RefundID    uuid.UUID `json:"refund_id"`
	OrderItemID uuid.UUID `json:"order_item_id"`
	Quantity    int       `json:"quantity"`
}

package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// AllOrderStatuses lists every status in lifecycle order.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

// orderTransitions holds the manual status changes. Refunded is reached only through refunds.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	return slices.Contains(AllOrderStatuses, s)
}

// CanTransitionTo reports whether a back-office user may move an order from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

// PaymentStatus tracks whether the order has been paid.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// RefundStatus summarises how much of an order has been refunded.
type RefundStatus string

const (
	RefundStatusNone    RefundStatus = "none"
	RefundStatusPartial RefundStatus = "partial"
	RefundStatusFull    RefundStatus = "full"
)

// Order is the immutable snapshot of a checked-out cart plus its lifecycle state.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	Number          string          `json:"number"` // Human-facing order number.
	UserID          uuid.UUID       `json:"user_id"`
	Status          OrderStatus     `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	RefundStatus    RefundStatus    `json:"refund_status"`
	ShippingAddress AddressSnapshot `json:"shipping_address"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountTotal   decimal.Decimal `json:"discount_total"`
	ShippingFee     decimal.Decimal `json:"shipping_fee"`
	FinalTotal      decimal.Decimal `json:"final_total"`
	RefundedTotal   decimal.Decimal `json:"refunded_total"`
	Items           []*OrderItem    `json:"items,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ComputeFinalTotal returns subtotal - discountTotal + shippingFee.
func ComputeFinalTotal(subtotal, discountTotal, shippingFee decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discountTotal).Add(shippingFee)
}

// RemainingRefundable is the amount that can still be refunded.
func (o *Order) RemainingRefundable() decimal.Decimal {
	remaining := o.FinalTotal.Sub(o.RefundedTotal)
	if remaining.IsNegative() {
		return decimal.Zero
	}

	return remaining
}

// IsPaid reports whether payment has been recorded.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

// FindItem returns the order line with the given id, if any.
func (o *Order) FindItem(itemID uuid.UUID) *OrderItem {
	for _, item := range o.Items {
		if item.ID == itemID {
			return item
		}
	}

	return nil
}

// OrderItem is a priced line of an order. ProductID and VariantID are weak
// references: the catalog rows may change or disappear later.
type OrderItem struct {
	ID                uuid.UUID       `json:"id"`
	OrderID           uuid.UUID       `json:"order_id"`
	ProductID         uuid.UUID       `json:"product_id"`
	VariantID         uuid.UUID       `json:"variant_id"`
	ProductName       string          `json:"product_name"`
	SKU               string          `json:"sku"`
	PackageQuantity   int             `json:"package_quantity"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	UnitDiscount      decimal.Decimal `json:"unit_discount"`
	RestockedQuantity int             `json:"restocked_quantity"` // Units already returned to stock.
	CreatedAt         time.Time       `json:"created_at"`
}

// LineSubtotal is the list-price total of the line.
func (i *OrderItem) LineSubtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineDiscount is the discount total of the line.
func (i *OrderItem) LineDiscount() decimal.Decimal {
	return i.UnitDiscount.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// RestockableQuantity is the number of units not yet returned to stock.
func (i *OrderItem) RestockableQuantity() int {
	return i.Quantity - i.RestockedQuantity
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	Status OrderStatus // Empty matches every status.
	UserID *uuid.UUID
	From   *time.Time // Inclusive lower bound on CreatedAt.
	To     *time.Time // Exclusive upper bound on CreatedAt.
	Page   Page
}

// StockChange is a signed adjustment to a variant's stock.
type StockChange struct {
	VariantID uuid.UUID
	Quantity  int
}

// OrderStats is the back-office aggregate over orders.
type OrderStats struct {
	TotalOrders   int64                 `json:"total_orders"`
	CountByStatus map[OrderStatus]int64 `json:"count_by_status"`
	GrossRevenue  decimal.Decimal       `json:"gross_revenue"` // Sum of FinalTotal over paid orders.
	RefundedTotal decimal.Decimal       `json:"refunded_total"`
	NetRevenue    decimal.Decimal       `json:"net_revenue"`
	From          *time.Time            `json:"from,omitempty"`
	To            *time.Time            `json:"to,omitempty"`
}

// OrderEventType names the events published about orders.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
	OrderEventRefunded      OrderEventType = "order.refunded"
)

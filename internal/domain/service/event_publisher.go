package service

import (
	"context"

	"pharmacy/internal/domain/entity"
)

// OrderEvent is the message published when an order is created, changes status or is refunded.
type OrderEvent struct {
	RequestID   string                `json:"request_id,omitempty"` // For distributed tracing
	EventID     string                `json:"event_id"`
	Type        entity.OrderEventType `json:"type"`
	OrderID     string                `json:"order_id"`
	OrderNumber string                `json:"order_number"`
	UserID      string                `json:"user_id"`
	Status      entity.OrderStatus    `json:"status"`
	FinalTotal  string                `json:"final_total"`
	Amount      string                `json:"amount,omitempty"` // Refund amount for order.refunded.
	OccurredAt  string                `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

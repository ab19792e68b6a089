package repository

import (
	"context"
	"time"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders and their lines.
type OrderRepository interface {
	// Create persists the order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID loads an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate loads an order with its items and locks the order row.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns one page of orders, newest first, without items.
	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error)

	// Update saves the order's status and money columns.
	Update(ctx context.Context, order *entity.Order) error

	// SetItemRestocked stores the restocked quantity of an order line.
	SetItemRestocked(ctx context.Context, itemID uuid.UUID, restockedQuantity int) error

	// Stats aggregates orders created within [from, to). Nil bounds are open.
	Stats(ctx context.Context, from, to *time.Time) (*entity.OrderStats, error)
}

// RefundRepository persists refunds.
type RefundRepository interface {
	// Create persists the refund together with its items.
	Create(ctx context.Context, refund *entity.Refund) error

	// FindByOrderID lists the refunds of an order, oldest first.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Refund, error)
}

package repository

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for cart persistence.
var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository persists carts and their lines. Loaded carts carry their items
// with the referenced product and variant attached.
type CartRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	FindBySessionID(ctx context.Context, sessionID string) (*entity.Cart, error)
	Create(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, cartID uuid.UUID) error

	AddItem(ctx context.Context, item *entity.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// ClearItems removes every line of the cart.
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}

package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput defines the data required to put a variant into the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
	Quantity  int
}

// CartView is a cart together with its snapshot totals.
type CartView struct {
	ID        *uuid.UUID         `json:"id,omitempty"` // Nil until the first item is added.
	SessionID string             `json:"session_id,omitempty"`
	Items     []*entity.CartItem `json:"items"`
	Totals    entity.CartTotals  `json:"totals"`
}

// CartUsecase defines the interface for cart operations of users and anonymous sessions.
type CartUsecase interface {
	GetCart(ctx context.Context, owner entity.CartOwner) (*CartView, error)

	// AddItem adds the variant to the owner's cart, creating the cart on first use.
	AddItem(ctx context.Context, owner entity.CartOwner, input *AddCartItemInput) (*CartView, error)

	// UpdateItemQuantity sets the quantity of a line. Zero removes the line.
	UpdateItemQuantity(ctx context.Context, owner entity.CartOwner, itemID uuid.UUID, quantity int) (*CartView, error)

	RemoveItem(ctx context.Context, owner entity.CartOwner, itemID uuid.UUID) (*CartView, error)
	ClearCart(ctx context.Context, owner entity.CartOwner) error

	// MergeSessionCart moves the lines of a session cart into the user's cart and deletes the session cart.
	MergeSessionCart(ctx context.Context, userID uuid.UUID, sessionID string) error
}

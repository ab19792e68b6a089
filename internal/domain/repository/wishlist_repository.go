package repository

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrWishlistItemNotFound is returned when the product is not on the wishlist.
var ErrWishlistItemNotFound = errors.New("wishlist item not found")

// WishlistRepository persists saved products.
type WishlistRepository interface {
	// Add saves the product for the user. Adding an existing entry is a no-op.
	Add(ctx context.Context, item *entity.WishlistItem) error

	Remove(ctx context.Context, userID, productID uuid.UUID) error

	// FindByUser lists the user's wishlist, newest first, with products attached.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)
}

package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for saved products.
type WishlistUsecase interface {
	ListWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	// AddToWishlist saves a product. Saving it again is a no-op.
	AddToWishlist(ctx context.Context, userID, productID uuid.UUID) error

	RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error
}

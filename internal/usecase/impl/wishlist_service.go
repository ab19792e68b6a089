package impl

import (
	"context"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService creates a new wishlist service instance
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// ListWishlist returns the user's saved products, newest first. Blocked products are left out.
func (s *wishlistService) ListWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	items, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	visible := make([]*entity.WishlistItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil || item.Product.IsBlock {
			continue
		}
		visible = append(visible, item)
	}

	return visible, nil
}

// AddToWishlist saves a storefront product for the user.
func (s *wishlistService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return mapRepoError(err, "failed to find product", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
	}
	if product.IsBlock {
		return domainerrors.ErrProductNotFound.WrapMessage("product is blocked")
	}

	item := &entity.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Add(ctx, item); err != nil {
		return mapRepoError(err, "failed to add to wishlist", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
	}

	return nil
}

// RemoveFromWishlist drops a product from the user's wishlist.
func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		return mapRepoError(err, "failed to remove from wishlist", mapping(repository.ErrWishlistItemNotFound, domainerrors.ErrNotFound))
	}

	return nil
}

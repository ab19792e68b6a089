package impl

import (
	"context"
	"testing"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_ListWishlist_HidesBlocked(t *testing.T) {
	repos := newRepoMocks(t)
	svc := NewWishlistService(repos.wishlist, repos.product)
	ctx := context.Background()
	userID := uuid.New()

	visible := &entity.WishlistItem{ID: uuid.New(), Product: &entity.Product{ID: uuid.New()}}
	repos.wishlist.EXPECT().FindByUser(ctx, userID).Return([]*entity.WishlistItem{
		visible,
		{ID: uuid.New(), Product: &entity.Product{ID: uuid.New(), IsBlock: true}},
		{ID: uuid.New()},
	}, nil)

	items, err := svc.ListWishlist(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []*entity.WishlistItem{visible}, items)
}

func TestWishlistService_AddToWishlist(t *testing.T) {
	repos := newRepoMocks(t)
	svc := NewWishlistService(repos.wishlist, repos.product)
	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New()}

	repos.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	repos.wishlist.EXPECT().
		Add(ctx, mock.MatchedBy(func(item *entity.WishlistItem) bool {
			return item.UserID == userID && item.ProductID == product.ID
		})).
		Return(nil)

	require.NoError(t, svc.AddToWishlist(ctx, userID, product.ID))
}

func TestWishlistService_AddToWishlist_Rejections(t *testing.T) {
	repos := newRepoMocks(t)
	svc := NewWishlistService(repos.wishlist, repos.product)
	ctx := context.Background()
	blocked := &entity.Product{ID: uuid.New(), IsBlock: true}
	missingID := uuid.New()

	repos.product.EXPECT().FindByID(ctx, blocked.ID).Return(blocked, nil)
	repos.product.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrProductNotFound)

	err := svc.AddToWishlist(ctx, uuid.New(), blocked.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	err = svc.AddToWishlist(ctx, uuid.New(), missingID)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestWishlistService_RemoveFromWishlist(t *testing.T) {
	repos := newRepoMocks(t)
	svc := NewWishlistService(repos.wishlist, repos.product)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	repos.wishlist.EXPECT().Remove(ctx, userID, productID).Return(nil).Once()
	require.NoError(t, svc.RemoveFromWishlist(ctx, userID, productID))

	repos.wishlist.EXPECT().Remove(ctx, userID, productID).Return(repository.ErrWishlistItemNotFound).Once()
	err := svc.RemoveFromWishlist(ctx, userID, productID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

package impl

import (
	"context"
	"testing"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCartService(t *testing.T) (usecase.CartUsecase, *repoMocks) {
	repos := newRepoMocks(t)
	repos.expectTx()

	svc := NewCartService(CartServiceParams{
		TxManager: repos.txManager,
		CartRepo:  repos.cart,
		Logger:    newDiscardLogger(),
	})

	return svc, repos
}

func sampleVariant(productID uuid.UUID, stock int) *entity.ProductVariant {
	discount := decimal.RequireFromString("90.00")

	return &entity.ProductVariant{
		ID:              uuid.New(),
		ProductID:       productID,
		PackageQuantity: 10,
		Price:           decimal.RequireFromString("100.00"),
		DiscountPrice:   &discount,
		Stock:           stock,
	}
}

func TestCartService_GetCart_NoCartYet(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()

	repos.cart.EXPECT().FindBySessionID(ctx, "sess-1").Return(nil, repository.ErrCartNotFound)

	view, err := svc.GetCart(ctx, entity.CartOwner{SessionID: "sess-1"})
	require.NoError(t, err)
	assert.Nil(t, view.ID)
	assert.Equal(t, "sess-1", view.SessionID)
	assert.Empty(t, view.Items)
	assert.True(t, view.Totals.Total.IsZero())
}

func TestCartService_GetCart_Totals(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: &userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), Quantity: 2, PriceAtAdd: decimal.RequireFromString("100"), DiscountAtAdd: decimal.RequireFromString("10")},
			{ID: uuid.New(), Quantity: 1, PriceAtAdd: decimal.RequireFromString("55.50"), DiscountAtAdd: decimal.Zero},
		},
	}
	repos.cart.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)

	view, err := svc.GetCart(ctx, entity.CartOwner{UserID: &userID})
	require.NoError(t, err)
	assert.Equal(t, "255.5", view.Totals.Subtotal.String())
	assert.Equal(t, "20", view.Totals.DiscountTotal.String())
	assert.Equal(t, "235.5", view.Totals.Total.String())
	assert.Equal(t, 3, view.Totals.ItemCount)
	assert.Empty(t, view.SessionID)
}

func TestCartService_MissingOwner(t *testing.T) {
	svc, _ := createTestCartService(t)
	ctx := context.Background()

	_, err := svc.GetCart(ctx, entity.CartOwner{})
	assert.True(t, errors.Is(err, domainerrors.ErrCartOwnerMissing))

	_, err = svc.AddItem(ctx, entity.CartOwner{}, &usecase.AddCartItemInput{Quantity: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrCartOwnerMissing))

	err = svc.ClearCart(ctx, entity.CartOwner{})
	assert.True(t, errors.Is(err, domainerrors.ErrCartOwnerMissing))
}

func TestCartService_AddItem_CreatesCartWithSnapshot(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New()}
	variant := sampleVariant(product.ID, 5)
	owner := entity.CartOwner{SessionID: "sess-1"}
	cartID := uuid.New()

	repos.variant.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)
	repos.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	repos.cart.EXPECT().FindBySessionID(ctx, "sess-1").Return(nil, repository.ErrCartNotFound).Once()
	repos.cart.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Cart) bool { return c.SessionID == "sess-1" && c.UserID == nil })).
		Run(func(ctx context.Context, c *entity.Cart) { c.ID = cartID }).
		Return(nil)
	repos.cart.EXPECT().
		AddItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.CartID == cartID &&
				item.Quantity == 2 &&
				item.PriceAtAdd.Equal(decimal.RequireFromString("100")) &&
				item.DiscountAtAdd.Equal(decimal.RequireFromString("10"))
		})).
		Return(nil)
	repos.cart.EXPECT().FindBySessionID(ctx, "sess-1").Return(&entity.Cart{
		ID:        cartID,
		SessionID: "sess-1",
		Items: []*entity.CartItem{
			{ID: uuid.New(), VariantID: variant.ID, Quantity: 2, PriceAtAdd: variant.Price, DiscountAtAdd: variant.UnitDiscount()},
		},
	}, nil).Once()

	view, err := svc.AddItem(ctx, owner, &usecase.AddCartItemInput{ProductID: product.ID, VariantID: variant.ID, Quantity: 2})
	require.NoError(t, err)
	require.NotNil(t, view.ID)
	assert.Equal(t, cartID, *view.ID)
	assert.Equal(t, "180", view.Totals.Total.String())
}

func TestCartService_AddItem_ExistingLineKeepsSnapshot(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New()}
	variant := sampleVariant(product.ID, 5)
	existing := &entity.CartItem{ID: uuid.New(), VariantID: variant.ID, Quantity: 2, PriceAtAdd: decimal.RequireFromString("80")}
	cart := &entity.Cart{ID: uuid.New(), UserID: &userID, Items: []*entity.CartItem{existing}}

	repos.variant.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)
	repos.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	repos.cart.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	repos.cart.EXPECT().UpdateItemQuantity(ctx, existing.ID, 5).Return(nil)

	_, err := svc.AddItem(ctx, entity.CartOwner{UserID: &userID}, &usecase.AddCartItemInput{ProductID: product.ID, VariantID: variant.ID, Quantity: 3})
	require.NoError(t, err)
	repos.cart.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name    string
		setup   func(repos *repoMocks, variant *entity.ProductVariant)
		input   func(variant *entity.ProductVariant) *usecase.AddCartItemInput
		wantErr error
	}{
		{
			name:  "zero quantity",
			setup: func(repos *repoMocks, variant *entity.ProductVariant) {},
			input: func(variant *entity.ProductVariant) *usecase.AddCartItemInput {
				return &usecase.AddCartItemInput{ProductID: productID, VariantID: variant.ID}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "variant of another product",
			setup: func(repos *repoMocks, variant *entity.ProductVariant) {
				repos.variant.EXPECT().FindByID(mock.Anything, variant.ID).Return(variant, nil)
			},
			input: func(variant *entity.ProductVariant) *usecase.AddCartItemInput {
				return &usecase.AddCartItemInput{ProductID: uuid.New(), VariantID: variant.ID, Quantity: 1}
			},
			wantErr: domainerrors.ErrVariantNotFound,
		},
		{
			name: "blocked product",
			setup: func(repos *repoMocks, variant *entity.ProductVariant) {
				repos.variant.EXPECT().FindByID(mock.Anything, variant.ID).Return(variant, nil)
				repos.product.EXPECT().FindByID(mock.Anything, productID).Return(&entity.Product{ID: productID, IsBlock: true}, nil)
			},
			input: func(variant *entity.ProductVariant) *usecase.AddCartItemInput {
				return &usecase.AddCartItemInput{ProductID: productID, VariantID: variant.ID, Quantity: 1}
			},
			wantErr: domainerrors.ErrProductUnavailable,
		},
		{
			name: "more than stock",
			setup: func(repos *repoMocks, variant *entity.ProductVariant) {
				repos.variant.EXPECT().FindByID(mock.Anything, variant.ID).Return(variant, nil)
				repos.product.EXPECT().FindByID(mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
				repos.cart.EXPECT().FindBySessionID(mock.Anything, "sess-1").Return(&entity.Cart{ID: uuid.New()}, nil)
			},
			input: func(variant *entity.ProductVariant) *usecase.AddCartItemInput {
				return &usecase.AddCartItemInput{ProductID: productID, VariantID: variant.ID, Quantity: 4}
			},
			wantErr: domainerrors.ErrOutOfStock,
		},
		{
			name: "unknown variant",
			setup: func(repos *repoMocks, variant *entity.ProductVariant) {
				repos.variant.EXPECT().FindByID(mock.Anything, variant.ID).Return(nil, repository.ErrVariantNotFound)
			},
			input: func(variant *entity.ProductVariant) *usecase.AddCartItemInput {
				return &usecase.AddCartItemInput{ProductID: productID, VariantID: variant.ID, Quantity: 1}
			},
			wantErr: domainerrors.ErrVariantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repos := createTestCartService(t)
			variant := sampleVariant(productID, 3)
			tt.setup(repos, variant)

			_, err := svc.AddItem(context.Background(), entity.CartOwner{SessionID: "sess-1"}, tt.input(variant))
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCartService_UpdateItemQuantity(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	variant := sampleVariant(uuid.New(), 4)
	item := &entity.CartItem{ID: uuid.New(), VariantID: variant.ID, Quantity: 1, Variant: variant}
	cart := &entity.Cart{ID: uuid.New(), UserID: &userID, Items: []*entity.CartItem{item}}
	owner := entity.CartOwner{UserID: &userID}

	repos.cart.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	repos.cart.EXPECT().UpdateItemQuantity(ctx, item.ID, 4).Return(nil)

	_, err := svc.UpdateItemQuantity(ctx, owner, item.ID, 4)
	require.NoError(t, err)

	_, err = svc.UpdateItemQuantity(ctx, owner, item.ID, 5)
	assert.True(t, errors.Is(err, domainerrors.ErrOutOfStock))

	_, err = svc.UpdateItemQuantity(ctx, owner, uuid.New(), 1)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))

	_, err = svc.UpdateItemQuantity(ctx, owner, item.ID, -1)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_UpdateItemQuantity_ZeroRemoves(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()
	item := &entity.CartItem{ID: uuid.New(), Quantity: 2}
	cart := &entity.Cart{ID: uuid.New(), SessionID: "sess-1", Items: []*entity.CartItem{item}}

	repos.cart.EXPECT().FindBySessionID(ctx, "sess-1").Return(cart, nil)
	repos.cart.EXPECT().DeleteItem(ctx, item.ID).Return(nil)

	_, err := svc.UpdateItemQuantity(ctx, entity.CartOwner{SessionID: "sess-1"}, item.ID, 0)
	require.NoError(t, err)
}

func TestCartService_ClearCart(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()
	cartID := uuid.New()

	repos.cart.EXPECT().FindBySessionID(ctx, "sess-1").Return(&entity.Cart{ID: cartID}, nil)
	repos.cart.EXPECT().ClearItems(ctx, cartID).Return(nil)
	repos.cart.EXPECT().FindBySessionID(ctx, "sess-2").Return(nil, repository.ErrCartNotFound)

	require.NoError(t, svc.ClearCart(ctx, entity.CartOwner{SessionID: "sess-1"}))
	require.NoError(t, svc.ClearCart(ctx, entity.CartOwner{SessionID: "sess-2"}))
}

func TestCartService_MergeSessionCart(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	shared := sampleVariant(uuid.New(), 5)
	fresh := sampleVariant(uuid.New(), 10)
	userItem := &entity.CartItem{ID: uuid.New(), VariantID: shared.ID, Quantity: 3}
	userCart := &entity.Cart{ID: uuid.New(), UserID: &userID, Items: []*entity.CartItem{userItem}}
	sessionCart := &entity.Cart{
		ID:        uuid.New(),
		SessionID: "sess-1",
		Items: []*entity.CartItem{
			{ID: uuid.New(), VariantID: shared.ID, Quantity: 4, Variant: shared},
			{ID: uuid.New(), ProductID: fresh.ProductID, VariantID: fresh.ID, Quantity: 1, Variant: fresh, PriceAtAdd: fresh.Price},
		},
	}

	repos.cart.EXPECT().FindBySessionID(ctx, "sess-1").Return(sessionCart, nil)
	repos.cart.EXPECT().FindByUserID(ctx, userID).Return(userCart, nil)
	// 3 + 4 exceeds the stock of 5, so the merged line is capped.
	repos.cart.EXPECT().UpdateItemQuantity(ctx, userItem.ID, 5).Return(nil)
	repos.cart.EXPECT().
		AddItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.CartID == userCart.ID && item.VariantID == fresh.ID && item.PriceAtAdd.Equal(fresh.Price)
		})).
		Return(nil)
	repos.cart.EXPECT().Delete(ctx, sessionCart.ID).Return(nil)

	require.NoError(t, svc.MergeSessionCart(ctx, userID, "sess-1"))
}

func TestCartService_MergeSessionCart_CapsNewLinesAndDropsGone(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	shrunk := sampleVariant(uuid.New(), 2)
	soldOut := sampleVariant(uuid.New(), 0)
	userCart := &entity.Cart{ID: uuid.New(), UserID: &userID}
	sessionCart := &entity.Cart{
		ID:        uuid.New(),
		SessionID: "sess-2",
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: shrunk.ProductID, VariantID: shrunk.ID, Quantity: 5, Variant: shrunk, PriceAtAdd: shrunk.Price},
			{ID: uuid.New(), ProductID: soldOut.ProductID, VariantID: soldOut.ID, Quantity: 1, Variant: soldOut},
			{ID: uuid.New(), ProductID: uuid.New(), VariantID: uuid.New(), Quantity: 1},
		},
	}

	repos.cart.EXPECT().FindBySessionID(ctx, "sess-2").Return(sessionCart, nil)
	repos.cart.EXPECT().FindByUserID(ctx, userID).Return(userCart, nil)
	repos.cart.EXPECT().
		AddItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.VariantID == shrunk.ID && item.Quantity == 2
		})).
		Return(nil).
		Once()
	repos.cart.EXPECT().Delete(ctx, sessionCart.ID).Return(nil)

	require.NoError(t, svc.MergeSessionCart(ctx, userID, "sess-2"))
	repos.cart.AssertNumberOfCalls(t, "AddItem", 1)
}

func TestCartService_MergeSessionCart_NothingToMerge(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()

	require.NoError(t, svc.MergeSessionCart(ctx, uuid.New(), ""))

	repos.cart.EXPECT().FindBySessionID(ctx, "gone").Return(nil, repository.ErrCartNotFound)
	require.NoError(t, svc.MergeSessionCart(ctx, uuid.New(), "gone"))
}

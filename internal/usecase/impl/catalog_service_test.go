package impl

import (
	"context"
	"testing"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	mockSvc "pharmacy/internal/mocks/service"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service usecase.CatalogUsecase
	repos   *repoMocks
	cache   *mockSvc.MockCatalogCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	repos := newRepoMocks(t)
	cache := mockSvc.NewMockCatalogCache(t)

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo:  repos.product,
		VariantRepo:  repos.variant,
		BrandRepo:    repos.brand,
		CategoryRepo: repos.category,
		Cache:        cache,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{service: svc, repos: repos, cache: cache}
}

func TestCatalogService_ListProducts_HidesBlocked(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New(), Name: "Vitamin C"}}

	fx.repos.product.EXPECT().
		List(ctx, mock.MatchedBy(func(f entity.ProductFilter) bool {
			return !f.IncludeBlocked && f.Sort == entity.ProductSortNewest && f.Query == "vit" && f.Page.Size == 20
		})).
		Return(products, int64(1), nil)

	result, err := fx.service.ListProducts(ctx, entity.ProductFilter{Query: " vit ", IncludeBlocked: true})
	require.NoError(t, err)
	assert.Equal(t, products, result.Items)
	assert.Equal(t, 1, result.TotalPages)
}

func TestCatalogService_ListProducts_InvalidSort(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.ListProducts(context.Background(), entity.ProductFilter{Sort: "popular"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_GetProductBySlug_CacheHit(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Slug: "vitamin-c"}

	fx.cache.EXPECT().GetProduct(ctx, "vitamin-c").Return(product, nil)

	got, err := fx.service.GetProductBySlug(ctx, "vitamin-c")
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogService_GetProductBySlug_CacheMissFillsCache(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Slug: "vitamin-c"}

	fx.cache.EXPECT().GetProduct(ctx, "vitamin-c").Return(nil, service.ErrCacheMiss)
	fx.repos.product.EXPECT().FindBySlug(ctx, "vitamin-c").Return(product, nil)
	fx.cache.EXPECT().SetProduct(ctx, product).Return(nil)

	got, err := fx.service.GetProductBySlug(ctx, "vitamin-c")
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogService_GetProductBySlug_CacheErrorFallsBackToRepository(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Slug: "vitamin-c"}

	fx.cache.EXPECT().GetProduct(ctx, "vitamin-c").Return(nil, assert.AnError)
	fx.repos.product.EXPECT().FindBySlug(ctx, "vitamin-c").Return(product, nil)
	fx.cache.EXPECT().SetProduct(ctx, product).Return(assert.AnError)

	got, err := fx.service.GetProductBySlug(ctx, "vitamin-c")
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogService_GetProductBySlug_Blocked(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetProduct(ctx, "hidden").Return(nil, service.ErrCacheMiss)
	fx.repos.product.EXPECT().FindBySlug(ctx, "hidden").Return(&entity.Product{Slug: "hidden", IsBlock: true}, nil)

	_, err := fx.service.GetProductBySlug(ctx, "hidden")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_GetProductBySlug_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetProduct(ctx, "missing").Return(nil, service.ErrCacheMiss)
	fx.repos.product.EXPECT().FindBySlug(ctx, "missing").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProductBySlug(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_GetVariant(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New()}
	variant := &entity.ProductVariant{ID: uuid.New(), ProductID: product.ID}

	fx.repos.variant.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)
	fx.repos.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	detail, err := fx.service.GetVariant(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, variant.ID, detail.ID)
	assert.Equal(t, product, detail.Product)
}

func TestCatalogService_GetVariant_BlockedProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), IsBlock: true}
	variant := &entity.ProductVariant{ID: uuid.New(), ProductID: product.ID}

	fx.repos.variant.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)
	fx.repos.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.GetVariant(ctx, variant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrVariantNotFound))
}

func TestCatalogService_Search(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	brands := []*entity.Brand{{ID: uuid.New(), Name: "Panadol"}}

	fx.repos.product.EXPECT().
		List(ctx, mock.MatchedBy(func(f entity.ProductFilter) bool {
			return f.Query == "pana" && !f.IncludeBlocked && f.Page.Size == searchLimit
		})).
		Return(nil, int64(0), nil)
	fx.repos.brand.EXPECT().Search(ctx, "pana", searchLimit).Return(brands, nil)
	fx.repos.category.EXPECT().Search(ctx, "pana", searchLimit).Return(nil, nil)

	result, err := fx.service.Search(ctx, "pana")
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.NotNil(t, result.Products)
	assert.Equal(t, brands, result.Brands)
	assert.NotNil(t, result.Categories)
}

func TestCatalogService_Search_EmptyQuery(t *testing.T) {
	fx := createTestCatalogService(t)

	result, err := fx.service.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.Empty(t, result.Brands)
	assert.Empty(t, result.Categories)
}

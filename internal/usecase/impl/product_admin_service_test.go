package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"pharmacy/config"
	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	mockSvc "pharmacy/internal/mocks/service"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type productAdminFixtures struct {
	service usecase.ProductAdminUsecase
	repos   *repoMocks
	storage *mockSvc.MockImageStorage
	cache   *mockSvc.MockCatalogCache
}

func createTestProductAdminService(t *testing.T, maxImageBytes int64) productAdminFixtures {
	repos := newRepoMocks(t)
	repos.expectTx()
	storage := mockSvc.NewMockImageStorage(t)
	cache := mockSvc.NewMockCatalogCache(t)

	cfg := newTestConfig(0)
	cfg.Storage = &config.StorageConfig{MaxImageBytes: maxImageBytes}

	svc := NewProductAdminService(ProductAdminServiceParams{
		TxManager:   repos.txManager,
		ProductRepo: repos.product,
		VariantRepo: repos.variant,
		Storage:     storage,
		Cache:       cache,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return productAdminFixtures{service: svc, repos: repos, storage: storage, cache: cache}
}

func sampleVariantInput() *usecase.VariantInput {
	return &usecase.VariantInput{
		PackageQuantity: 10,
		Price:           decimal.RequireFromString("120.00"),
		Stock:           30,
	}
}

func TestProductAdminService_CreateProduct(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	categoryID := uuid.New()
	productID := uuid.New()

	fx.repos.category.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.repos.product.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Slug == "vitamin-c-500mg" && p.SKU == "VC-500" && p.Name == "Vitamin C 500mg"
		})).
		Run(func(ctx context.Context, p *entity.Product) { p.ID = productID }).
		Return(nil)
	fx.repos.variant.EXPECT().
		Create(ctx, mock.MatchedBy(func(v *entity.ProductVariant) bool { return v.ProductID == productID })).
		Return(nil).
		Times(2)
	fx.repos.product.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID, Slug: "vitamin-c-500mg"}, nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		SKU:        " VC-500 ",
		Name:       "Vitamin C 500mg",
		CategoryID: categoryID,
		Variants:   []*usecase.VariantInput{sampleVariantInput(), sampleVariantInput()},
	})
	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
}

func TestProductAdminService_CreateProduct_Rejections(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()

	_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{Name: "No Variants"})
	assert.True(t, errors.Is(err, domainerrors.ErrVariantRequired))

	discount := decimal.RequireFromString("200")
	bad := sampleVariantInput()
	bad.DiscountPrice = &discount
	_, err = fx.service.CreateProduct(ctx, &usecase.CreateProductInput{Name: "Bad", Variants: []*usecase.VariantInput{bad}})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidVariant))

	_, err = fx.service.CreateProduct(ctx, &usecase.CreateProductInput{Name: "!!!", Variants: []*usecase.VariantInput{sampleVariantInput()}})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductAdminService_CreateProduct_DuplicateSKU(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	categoryID := uuid.New()
	brandID := uuid.New()

	fx.repos.category.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.repos.brand.EXPECT().FindByID(ctx, brandID).Return(&entity.Brand{ID: brandID}, nil)
	fx.repos.product.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(repository.ErrDuplicateSKU)

	_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		SKU:        "VC-500",
		Name:       "Vitamin C",
		CategoryID: categoryID,
		BrandID:    &brandID,
		Variants:   []*usecase.VariantInput{sampleVariantInput()},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateSKU))
}

func TestProductAdminService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	categoryID := uuid.New()

	fx.repos.category.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:       "Vitamin C",
		CategoryID: categoryID,
		Variants:   []*usecase.VariantInput{sampleVariantInput()},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestProductAdminService_UpdateProduct_InvalidatesOldAndNewSlug(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	categoryID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Slug: "old-slug", Name: "Old", CategoryID: categoryID}
	newName := "New Name"
	newSlug := ""

	fx.repos.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.repos.category.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.repos.product.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Product) bool { return p.Slug == "new-name" && p.Name == "New Name" })).
		Return(nil)
	fx.cache.EXPECT().InvalidateProduct(ctx, "old-slug").Return(nil)
	fx.cache.EXPECT().InvalidateProduct(ctx, "new-name").Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, product.ID, &usecase.UpdateProductInput{Name: &newName, Slug: &newSlug})
	require.NoError(t, err)
	assert.Equal(t, "new-name", updated.Slug)
}

func TestProductAdminService_SetProductBlocked(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Slug: "vitamin-c"}

	fx.repos.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.repos.product.EXPECT().Update(ctx, product).Return(nil)
	fx.cache.EXPECT().InvalidateProduct(ctx, "vitamin-c").Return(assert.AnError)

	got, err := fx.service.SetProductBlocked(ctx, product.ID, true)
	require.NoError(t, err)
	assert.True(t, got.IsBlock)
}

func TestProductAdminService_DeleteProduct(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Slug: "vitamin-c"}

	fx.repos.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.repos.product.EXPECT().SoftDelete(ctx, product.ID).Return(nil)
	fx.cache.EXPECT().InvalidateProduct(ctx, "vitamin-c").Return(nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, product.ID))
}

func TestProductAdminService_DeleteVariant_LastVariant(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	variant := &entity.ProductVariant{ID: uuid.New(), ProductID: uuid.New()}

	fx.repos.variant.EXPECT().FindByIDForUpdate(ctx, variant.ID).Return(variant, nil)
	fx.repos.variant.EXPECT().CountByProduct(ctx, variant.ProductID).Return(int64(1), nil)

	err := fx.service.DeleteVariant(ctx, variant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrLastVariant))
}

func TestProductAdminService_DeleteVariant(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Slug: "vitamin-c"}
	variant := &entity.ProductVariant{ID: uuid.New(), ProductID: product.ID}

	fx.repos.variant.EXPECT().FindByIDForUpdate(ctx, variant.ID).Return(variant, nil)
	fx.repos.variant.EXPECT().CountByProduct(ctx, product.ID).Return(int64(2), nil)
	fx.repos.variant.EXPECT().Delete(ctx, variant.ID).Return(nil)
	fx.repos.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cache.EXPECT().InvalidateProduct(ctx, "vitamin-c").Return(nil)

	require.NoError(t, fx.service.DeleteVariant(ctx, variant.ID))
}

func TestProductAdminService_UpdateVariant_InvalidInput(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	variant := &entity.ProductVariant{ID: uuid.New(), ProductID: uuid.New(), PackageQuantity: 1}

	fx.repos.variant.EXPECT().FindByIDForUpdate(ctx, variant.ID).Return(variant, nil)

	input := sampleVariantInput()
	input.Stock = -1
	_, err := fx.service.UpdateVariant(ctx, variant.ID, input)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidVariant))
}

func TestProductAdminService_UploadImage(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Slug: "vitamin-c"}
	prefix := "products/" + product.ID.String() + "/"

	fx.repos.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, prefix) && strings.HasSuffix(key, ".png")
		}), "image/png", mock.Anything).
		RunAndReturn(func(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
			return "https://cdn.example.com/" + key, nil
		})
	fx.repos.product.EXPECT().AddImage(ctx, mock.AnythingOfType("*entity.ProductImage")).Return(nil)
	fx.cache.EXPECT().InvalidateProduct(ctx, "vitamin-c").Return(nil)

	image, err := fx.service.UploadImage(ctx, product.ID, &usecase.UploadImageInput{Filename: "front.png", Data: pngHeader, Position: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(image.URL, "https://cdn.example.com/products/"))
	assert.Equal(t, 1, image.Position)
}

func TestProductAdminService_UploadImage_RemovesOrphanOnRecordFailure(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Slug: "vitamin-c"}

	var storedKey string
	fx.repos.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Run(func(ctx context.Context, key, contentType string, body io.Reader) { storedKey = key }).
		Return("https://cdn.example.com/x.png", nil)
	fx.repos.product.EXPECT().AddImage(ctx, mock.AnythingOfType("*entity.ProductImage")).Return(assert.AnError)
	fx.storage.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, key string) { assert.Equal(t, storedKey, key) }).
		Return(nil)

	_, err := fx.service.UploadImage(ctx, product.ID, &usecase.UploadImageInput{Data: pngHeader})
	assert.Error(t, err)
}

func TestProductAdminService_UploadImage_Rejections(t *testing.T) {
	fx := createTestProductAdminService(t, 64)
	ctx := context.Background()
	productID := uuid.New()

	_, err := fx.service.UploadImage(ctx, productID, &usecase.UploadImageInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.UploadImage(ctx, productID, &usecase.UploadImageInput{Data: make([]byte, 65)})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.UploadImage(ctx, productID, &usecase.UploadImageInput{Data: []byte("GIF89a not allowed")})
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedImage))
}

func TestProductAdminService_DeleteImage_WrongProduct(t *testing.T) {
	fx := createTestProductAdminService(t, 0)
	ctx := context.Background()
	image := &entity.ProductImage{ID: uuid.New(), ProductID: uuid.New()}

	fx.repos.product.EXPECT().FindImage(ctx, image.ID).Return(image, nil)

	err := fx.service.DeleteImage(ctx, uuid.New(), image.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound))
}

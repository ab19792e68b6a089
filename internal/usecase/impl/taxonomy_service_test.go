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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTaxonomyService(t *testing.T) (usecase.TaxonomyUsecase, *repoMocks) {
	repos := newRepoMocks(t)
	repos.expectTx()

	svc := NewTaxonomyService(TaxonomyServiceParams{
		TxManager:    repos.txManager,
		BrandRepo:    repos.brand,
		CategoryRepo: repos.category,
		ProductRepo:  repos.product,
		Logger:       newDiscardLogger(),
	})

	return svc, repos
}

func TestTaxonomyService_CreateBrand(t *testing.T) {
	svc, repos := createTestTaxonomyService(t)
	ctx := context.Background()

	repos.brand.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Brand) bool { return b.Slug == "acme-pharma" && b.Name == "Acme Pharma" })).
		Return(nil)

	brand, err := svc.CreateBrand(ctx, &usecase.BrandInput{Name: " Acme Pharma "})
	require.NoError(t, err)
	assert.Equal(t, "acme-pharma", brand.Slug)
}

func TestTaxonomyService_CreateBrand_DuplicateSlug(t *testing.T) {
	svc, repos := createTestTaxonomyService(t)
	ctx := context.Background()

	repos.brand.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Brand")).Return(repository.ErrDuplicateSlug)

	_, err := svc.CreateBrand(ctx, &usecase.BrandInput{Name: "Acme", Slug: "acme"})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateSlug))
}

func TestTaxonomyService_DeleteBrand(t *testing.T) {
	tests := []struct {
		name     string
		products int64
		wantErr  error
	}{
		{name: "unused brand", products: 0},
		{name: "brand with products", products: 2, wantErr: domainerrors.ErrBrandInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repos := createTestTaxonomyService(t)
			ctx := context.Background()
			brandID := uuid.New()

			repos.brand.EXPECT().FindByID(ctx, brandID).Return(&entity.Brand{ID: brandID}, nil)
			repos.product.EXPECT().CountByBrand(ctx, brandID).Return(tt.products, nil)
			if tt.wantErr == nil {
				repos.brand.EXPECT().Delete(ctx, brandID).Return(nil)
			}

			err := svc.DeleteBrand(ctx, brandID)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTaxonomyService_GetBrand_NotFound(t *testing.T) {
	svc, repos := createTestTaxonomyService(t)
	ctx := context.Background()
	brandID := uuid.New()

	repos.brand.EXPECT().FindByID(ctx, brandID).Return(nil, repository.ErrBrandNotFound)

	_, err := svc.GetBrand(ctx, brandID)
	assert.True(t, errors.Is(err, domainerrors.ErrBrandNotFound))
}

func TestTaxonomyService_CreateCategory_UnknownParent(t *testing.T) {
	svc, repos := createTestTaxonomyService(t)
	ctx := context.Background()
	parentID := uuid.New()

	repos.category.EXPECT().FindByID(ctx, parentID).Return(nil, repository.ErrCategoryNotFound)

	_, err := svc.CreateCategory(ctx, &usecase.CategoryInput{Name: "Vitamins", ParentID: &parentID})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestTaxonomyService_UpdateCategory_RejectsCycle(t *testing.T) {
	svc, repos := createTestTaxonomyService(t)
	ctx := context.Background()

	// root -> child; moving root under child would close a loop.
	rootID := uuid.New()
	childID := uuid.New()
	root := &entity.Category{ID: rootID, Name: "Health", Slug: "health"}
	child := &entity.Category{ID: childID, ParentID: &rootID, Name: "Vitamins", Slug: "vitamins"}

	repos.category.EXPECT().FindByID(ctx, rootID).Return(root, nil)
	repos.category.EXPECT().FindByID(ctx, childID).Return(child, nil)

	_, err := svc.UpdateCategory(ctx, rootID, &usecase.CategoryInput{Name: "Health", ParentID: &childID})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCategoryTree))
}

func TestTaxonomyService_UpdateCategory_SelfParent(t *testing.T) {
	svc, repos := createTestTaxonomyService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	repos.category.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)

	_, err := svc.UpdateCategory(ctx, categoryID, &usecase.CategoryInput{Name: "Loop", ParentID: &categoryID})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCategoryTree))
}

func TestTaxonomyService_UpdateCategory_Move(t *testing.T) {
	svc, repos := createTestTaxonomyService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	parentID := uuid.New()

	repos.category.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID, Slug: "cold-flu"}, nil)
	repos.category.EXPECT().FindByID(ctx, parentID).Return(&entity.Category{ID: parentID}, nil)
	repos.category.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Category) bool {
			return c.ParentID != nil && *c.ParentID == parentID && c.Slug == "cold-and-flu"
		})).
		Return(nil)

	category, err := svc.UpdateCategory(ctx, categoryID, &usecase.CategoryInput{Name: "Cold & Flu", Slug: "cold and flu", ParentID: &parentID})
	require.NoError(t, err)
	assert.Equal(t, "Cold & Flu", category.Name)
}

func TestTaxonomyService_DeleteCategory_NotEmpty(t *testing.T) {
	svc, repos := createTestTaxonomyService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	repos.category.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	repos.category.EXPECT().CountChildren(ctx, categoryID).Return(int64(1), nil)
	repos.product.EXPECT().CountByCategory(ctx, categoryID).Return(int64(0), nil)

	err := svc.DeleteCategory(ctx, categoryID)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryInUse))
}

func TestTaxonomyService_DeleteCategory(t *testing.T) {
	svc, repos := createTestTaxonomyService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	repos.category.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	repos.category.EXPECT().CountChildren(ctx, categoryID).Return(int64(0), nil)
	repos.product.EXPECT().CountByCategory(ctx, categoryID).Return(int64(0), nil)
	repos.category.EXPECT().Delete(ctx, categoryID).Return(nil)

	require.NoError(t, svc.DeleteCategory(ctx, categoryID))
}

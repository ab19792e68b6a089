package impl

import (
	"context"
	"log/slog"
	"strings"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxCategoryDepth bounds the ancestor walk when checking for cycles.
const maxCategoryDepth = 32

// taxonomyService implements brand and category management.
type taxonomyService struct {
	txManager    repository.TransactionManager
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// TaxonomyServiceParams holds dependencies for TaxonomyService, injected by Fx.
type TaxonomyServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BrandRepo    repository.BrandRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewTaxonomyService is the constructor for taxonomyService.
func NewTaxonomyService(params TaxonomyServiceParams) usecase.TaxonomyUsecase {
	return &taxonomyService{
		txManager:    params.TxManager,
		brandRepo:    params.BrandRepo,
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

var (
	brandErrors = []errorMapping{
		mapping(repository.ErrBrandNotFound, domainerrors.ErrBrandNotFound),
		mapping(repository.ErrDuplicateSlug, domainerrors.ErrDuplicateSlug),
		mapping(repository.ErrInvalidReference, domainerrors.ErrBrandInUse),
	}
	categoryErrors = []errorMapping{
		mapping(repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound),
		mapping(repository.ErrDuplicateSlug, domainerrors.ErrDuplicateSlug),
		mapping(repository.ErrInvalidReference, domainerrors.ErrCategoryInUse),
	}
)

func (srv *taxonomyService) GetBrand(ctx context.Context, brandID uuid.UUID) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, brandID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find brand", brandErrors...)
	}

	return brand, nil
}

func (srv *taxonomyService) CreateBrand(ctx context.Context, input *usecase.BrandInput) (*entity.Brand, error) {
	slug, err := resolveSlug(input.Slug, input.Name)
	if err != nil {
		return nil, err
	}

	brand := &entity.Brand{
		Name:    strings.TrimSpace(input.Name),
		Slug:    slug,
		LogoURL: strings.TrimSpace(input.LogoURL),
	}
	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		return nil, mapRepoError(err, "failed to create brand", brandErrors...)
	}
	srv.logger.Info("Brand created", "brandID", brand.ID, "slug", brand.Slug)

	return brand, nil
}

func (srv *taxonomyService) UpdateBrand(ctx context.Context, brandID uuid.UUID, input *usecase.BrandInput) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, brandID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find brand", brandErrors...)
	}

	slug, err := resolveSlug(input.Slug, input.Name)
	if err != nil {
		return nil, err
	}
	brand.Name = strings.TrimSpace(input.Name)
	brand.Slug = slug
	brand.LogoURL = strings.TrimSpace(input.LogoURL)

	if err := srv.brandRepo.Update(ctx, brand); err != nil {
		return nil, mapRepoError(err, "failed to update brand", brandErrors...)
	}

	return brand, nil
}

// DeleteBrand removes a brand no product refers to.
func (srv *taxonomyService) DeleteBrand(ctx context.Context, brandID uuid.UUID) error {
	if _, err := srv.brandRepo.FindByID(ctx, brandID); err != nil {
		return mapRepoError(err, "failed to find brand", brandErrors...)
	}

	count, err := srv.productRepo.CountByBrand(ctx, brandID)
	if err != nil {
		return errors.Wrap(err, "failed to count brand products")
	}
	if count > 0 {
		return domainerrors.ErrBrandInUse.WrapMessage("brand has products")
	}

	if err := srv.brandRepo.Delete(ctx, brandID); err != nil {
		return mapRepoError(err, "failed to delete brand", brandErrors...)
	}
	srv.logger.Info("Brand deleted", "brandID", brandID)

	return nil
}

func (srv *taxonomyService) GetCategory(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find category", categoryErrors...)
	}

	return category, nil
}

func (srv *taxonomyService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	slug, err := resolveSlug(input.Slug, input.Name)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{
		ParentID: input.ParentID,
		Name:     strings.TrimSpace(input.Name),
		Slug:     slug,
	}
	if category.ParentID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *category.ParentID); err != nil {
			return nil, mapRepoError(err, "failed to find parent category", categoryErrors...)
		}
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, mapRepoError(err, "failed to create category", categoryErrors...)
	}
	srv.logger.Info("Category created", "categoryID", category.ID, "slug", category.Slug)

	return category, nil
}

// UpdateCategory renames or moves a category. A category may not become its own ancestor.
func (srv *taxonomyService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	slug, err := resolveSlug(input.Slug, input.Name)
	if err != nil {
		return nil, err
	}

	var updated *entity.Category
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByID(ctx, categoryID)
		if err != nil {
			return mapRepoError(err, "failed to find category", categoryErrors...)
		}

		if input.ParentID != nil {
			if err := checkCategoryParent(ctx, categoryRepo, categoryID, *input.ParentID); err != nil {
				return err
			}
		}

		category.ParentID = input.ParentID
		category.Name = strings.TrimSpace(input.Name)
		category.Slug = slug

		if err := categoryRepo.Update(ctx, category); err != nil {
			return mapRepoError(err, "failed to update category", categoryErrors...)
		}
		updated = category

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update category transaction")
	}

	return updated, nil
}

// checkCategoryParent walks up from the new parent and rejects cycles.
func checkCategoryParent(ctx context.Context, categoryRepo repository.CategoryRepository, categoryID, parentID uuid.UUID) error {
	current := parentID
	for range maxCategoryDepth {
		if current == categoryID {
			return domainerrors.ErrInvalidCategoryTree.WrapMessage("category parent cycle")
		}

		parent, err := categoryRepo.FindByID(ctx, current)
		if err != nil {
			return mapRepoError(err, "failed to find parent category", categoryErrors...)
		}
		if parent.ParentID == nil {
			return nil
		}
		current = *parent.ParentID
	}

	return domainerrors.ErrInvalidCategoryTree.WrapMessage("category tree too deep")
}

// DeleteCategory removes a category without products or subcategories.
func (srv *taxonomyService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return mapRepoError(err, "failed to find category", categoryErrors...)
	}

	children, err := srv.categoryRepo.CountChildren(ctx, categoryID)
	if err != nil {
		return errors.Wrap(err, "failed to count subcategories")
	}
	products, err := srv.productRepo.CountByCategory(ctx, categoryID)
	if err != nil {
		return errors.Wrap(err, "failed to count category products")
	}
	if children > 0 || products > 0 {
		return domainerrors.ErrCategoryInUse.WrapMessage("category is not empty")
	}

	if err := srv.categoryRepo.Delete(ctx, categoryID); err != nil {
		return mapRepoError(err, "failed to delete category", categoryErrors...)
	}
	srv.logger.Info("Category deleted", "categoryID", categoryID)

	return nil
}

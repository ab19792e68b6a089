package postgres

import (
	"context"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// brandRepository implements the repository.BrandRepository interface.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandM := &model.BrandModel{
		ID:      brand.ID,
		Name:    brand.Name,
		Slug:    brand.Slug,
		LogoURL: brand.LogoURL,
	}

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	brand.ID = brandM.ID
	brand.CreatedAt = brandM.CreatedAt
	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

func (repo *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *brandRepository) FindBySlug(ctx context.Context, slug string) (*entity.Brand, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *brandRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Brand, error) {
	var brandM model.BrandModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&brandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand")
	}

	return toBrandDomain(&brandM), nil
}

// List returns every brand ordered by name.
func (repo *brandRepository) List(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []*model.BrandModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return toBrandsDomain(brandModels), nil
}

// Search matches brands whose name contains the query.
func (repo *brandRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Brand, error) {
	var brandModels []*model.BrandModel
	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", containsPattern(query)).
		Order("name ASC").
		Limit(limit).
		Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search brands")
	}

	return toBrandsDomain(brandModels), nil
}

func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BrandModel{ID: brand.ID}).
		Updates(map[string]any{
			"name":     brand.Name,
			"slug":     brand.Slug,
			"logo_url": brand.LogoURL,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

func (repo *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BrandModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{
		ID:       category.ID,
		ParentID: category.ParentID,
		Name:     category.Name,
		Slug:     category.Slug,
	}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *categoryRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

// List returns every category ordered by name.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return toCategoriesDomain(categoryModels), nil
}

// Search matches categories whose name contains the query.
func (repo *categoryRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", containsPattern(query)).
		Order("name ASC").
		Limit(limit).
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search categories")
	}

	return toCategoriesDomain(categoryModels), nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{ID: category.ID}).
		Updates(map[string]any{
			"parent_id": category.ParentID,
			"name":      category.Name,
			"slug":      category.Slug,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// CountChildren returns the number of direct subcategories.
func (repo *categoryRepository) CountChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("parent_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count subcategories")
	}

	return count, nil
}

// --- Mapper Functions ---

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		LogoURL:   data.LogoURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toBrandsDomain(data []*model.BrandModel) []*entity.Brand {
	brands := make([]*entity.Brand, 0, len(data))
	for _, brandM := range data {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		ParentID:  data.ParentID,
		Name:      data.Name,
		Slug:      data.Slug,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCategoriesDomain(data []*model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(data))
	for _, categoryM := range data {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories
}

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

const productMinPriceExpr = "(SELECT MIN(COALESCE(v.discount_price, v.price)) FROM product_variants v WHERE v.product_id = products.id)"

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists the product row only.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category", "Brand", "Variants", "Images").Create(productM).Error; err != nil {
		return translateProductWriteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID loads a product with its category, brand, variants and images.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, "products.id = ?", id)
}

// FindBySlug loads a product with its category, brand, variants and images.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return repo.findOne(ctx, "products.slug = ?", slug)
}

func (repo *productRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Product, error) {
	var productM model.ProductModel
	if err := preloadProduct(repo.db.WithContext(ctx)).
		Where(cond, arg).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// List returns one page of products with their variants and the total match count.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if !filter.IncludeBlocked {
		query = query.Where("products.is_block = ?", false)
	}
	if filter.CategorySlug != "" {
		// A category listing includes products of its direct subcategories.
		query = query.Where(
			"products.category_id IN (SELECT c.id FROM categories c WHERE c.slug = ? OR c.parent_id = (SELECT p.id FROM categories p WHERE p.slug = ?))",
			filter.CategorySlug, filter.CategorySlug,
		)
	}
	if filter.BrandSlug != "" {
		query = query.Where("products.brand_id = (SELECT b.id FROM brands b WHERE b.slug = ?)", filter.BrandSlug)
	}
	if filter.Query != "" {
		pattern := containsPattern(filter.Query)
		query = query.Where("products.name ILIKE ? OR products.sku ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	switch filter.Sort {
	case entity.ProductSortPriceAsc:
		query = query.Order(productMinPriceExpr + " ASC NULLS LAST")
	case entity.ProductSortPriceDesc:
		query = query.Order(productMinPriceExpr + " DESC NULLS LAST")
	default:
		query = query.Order("products.created_at DESC")
	}

	var productModels []*model.ProductModel
	if err := preloadProduct(query).
		Offset(filter.Page.Offset()).
		Limit(filter.Page.Size).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Updates(map[string]any{
			"sku":                   product.SKU,
			"slug":                  product.Slug,
			"name":                  product.Name,
			"description":           product.Description,
			"category_id":           product.CategoryID,
			"brand_id":              product.BrandID,
			"is_block":              product.IsBlock,
			"requires_prescription": product.RequiresPrescription,
		})
	if result.Error != nil {
		return translateProductWriteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SoftDelete hides the product from every read. Order lines keep referring to it by id.
func (repo *productRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by category")
	}

	return count, nil
}

func (repo *productRepository) CountByBrand(ctx context.Context, brandID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("brand_id = ?", brandID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by brand")
	}

	return count, nil
}

func (repo *productRepository) AddImage(ctx context.Context, image *entity.ProductImage) error {
	imageM := &model.ProductImageModel{
		ID:         image.ID,
		ProductID:  image.ProductID,
		StorageKey: image.StorageKey,
		URL:        image.URL,
		Position:   image.Position,
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add product image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

func (repo *productRepository) FindImage(ctx context.Context, id uuid.UUID) (*entity.ProductImage, error) {
	var imageM model.ProductImageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find product image")
	}

	return toProductImageDomain(&imageM), nil
}

func (repo *productRepository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductImageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

func preloadProduct(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Brand").
		Preload("Variants", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("package_quantity ASC").Order("created_at ASC")
		}).
		Preload("Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC").Order("created_at ASC")
		})
}

func translateProductWriteError(err error, message string) error {
	switch {
	case isUniqueViolationOn(err, "sku"):
		return repository.ErrDuplicateSKU
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateSlug
	case isForeignKeyConstraintViolation(err):
		return repository.ErrInvalidReference
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, message)
	}
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:                   data.ID,
		SKU:                  data.SKU,
		Slug:                 data.Slug,
		Name:                 data.Name,
		Description:          data.Description,
		CategoryID:           data.CategoryID,
		BrandID:              data.BrandID,
		IsBlock:              data.IsBlock,
		RequiresPrescription: data.RequiresPrescription,
		Category:             toCategoryDomain(data.Category),
		Brand:                toBrandDomain(data.Brand),
		Variants:             make([]*entity.ProductVariant, 0, len(data.Variants)),
		Images:               make([]*entity.ProductImage, 0, len(data.Images)),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
	for i := range data.Variants {
		product.Variants = append(product.Variants, toVariantDomain(&data.Variants[i]))
	}
	for i := range data.Images {
		product.Images = append(product.Images, toProductImageDomain(&data.Images[i]))
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                   data.ID,
		SKU:                  data.SKU,
		Slug:                 data.Slug,
		Name:                 data.Name,
		Description:          data.Description,
		CategoryID:           data.CategoryID,
		BrandID:              data.BrandID,
		IsBlock:              data.IsBlock,
		RequiresPrescription: data.RequiresPrescription,
	}
}

func toProductImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	if data == nil {
		return nil
	}

	return &entity.ProductImage{
		ID:         data.ID,
		ProductID:  data.ProductID,
		StorageKey: data.StorageKey,
		URL:        data.URL,
		Position:   data.Position,
		CreatedAt:  data.CreatedAt,
	}
}

package repository

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	ErrBrandNotFound     = errors.New("brand not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrVariantNotFound   = errors.New("variant not found")
	ErrImageNotFound     = errors.New("image not found")
	ErrDuplicateSlug     = errors.New("slug already exists")
	ErrDuplicateSKU      = errors.New("sku already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidReference  = errors.New("referenced row does not exist")
)

// BrandRepository persists brands.
type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Brand, error)
	List(ctx context.Context) ([]*entity.Brand, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Brand, error)
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountChildren returns the number of direct subcategories.
	CountChildren(ctx context.Context, id uuid.UUID) (int64, error)
}

// ProductRepository persists products and their images. Soft-deleted products are never returned.
type ProductRepository interface {
	// Create persists the product row only. Variants are created through VariantRepository.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID loads a product with its category, brand, variants and images.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug loads a product with its category, brand, variants and images.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// List returns one page of products with their variants and the total match count.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error)

	Update(ctx context.Context, product *entity.Product) error

	// SoftDelete hides the product from every read.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	CountByBrand(ctx context.Context, brandID uuid.UUID) (int64, error)

	AddImage(ctx context.Context, image *entity.ProductImage) error
	FindImage(ctx context.Context, id uuid.UUID) (*entity.ProductImage, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

// VariantRepository persists product variants and their stock.
type VariantRepository interface {
	Create(ctx context.Context, variant *entity.ProductVariant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error)

	// FindByIDForUpdate loads the variant and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error)

	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	Update(ctx context.Context, variant *entity.ProductVariant) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock subtracts quantity only if enough stock remains, otherwise
	// returns ErrInsufficientStock and changes nothing.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncrementStock adds quantity back to stock.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}

package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
)

// VariantDetail is a variant together with its parent product.
type VariantDetail struct {
	*entity.ProductVariant
	Product *entity.Product `json:"product"`
}

// CatalogUsecase defines storefront catalog reads. Blocked and deleted products are never returned.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*entity.PagedResult[*entity.Product], error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	GetVariant(ctx context.Context, variantID uuid.UUID) (*VariantDetail, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListBrands(ctx context.Context) ([]*entity.Brand, error)
	Search(ctx context.Context, query string) (*entity.SearchResult, error)
}

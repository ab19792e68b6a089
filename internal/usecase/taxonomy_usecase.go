package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
)

// BrandInput contains the editable fields of a brand. Slug is derived from Name when empty.
type BrandInput struct {
	Name    string
	Slug    string
	LogoURL string
}

// CategoryInput contains the editable fields of a category. Slug is derived from Name when empty.
type CategoryInput struct {
	Name     string
	Slug     string
	ParentID *uuid.UUID
}

// TaxonomyUsecase defines back-office brand and category management.
type TaxonomyUsecase interface {
	GetBrand(ctx context.Context, brandID uuid.UUID) (*entity.Brand, error)
	CreateBrand(ctx context.Context, input *BrandInput) (*entity.Brand, error)
	UpdateBrand(ctx context.Context, brandID uuid.UUID, input *BrandInput) (*entity.Brand, error)
	DeleteBrand(ctx context.Context, brandID uuid.UUID) error

	GetCategory(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
}

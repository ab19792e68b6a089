package usecase

import (
	"context"
	"time"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VariantInput contains the editable fields of a variant.
type VariantInput struct {
	PackageQuantity int
	Price           decimal.Decimal
	DiscountPrice   *decimal.Decimal
	Stock           int
	ExpiryDate      *time.Time
}

// CreateProductInput defines the data required to create a product with its variants.
type CreateProductInput struct {
	SKU                  string
	Slug                 string // Derived from Name when empty.
	Name                 string
	Description          string
	CategoryID           uuid.UUID
	BrandID              *uuid.UUID
	RequiresPrescription bool
	Variants             []*VariantInput
}

// UpdateProductInput defines a partial product update. Nil fields are left unchanged.
type UpdateProductInput struct {
	SKU                  *string
	Slug                 *string
	Name                 *string
	Description          *string
	CategoryID           *uuid.UUID
	BrandID              *uuid.UUID
	ClearBrand           bool
	RequiresPrescription *bool
}

// UploadImageInput is an image file sent by a back-office user.
type UploadImageInput struct {
	Filename string
	Data     []byte
	Position int
}

// ProductAdminUsecase defines back-office product management.
type ProductAdminUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*entity.PagedResult[*entity.Product], error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
	SetProductBlocked(ctx context.Context, productID uuid.UUID, blocked bool) (*entity.Product, error)

	AddVariant(ctx context.Context, productID uuid.UUID, input *VariantInput) (*entity.ProductVariant, error)
	UpdateVariant(ctx context.Context, variantID uuid.UUID, input *VariantInput) (*entity.ProductVariant, error)

	// DeleteVariant removes a variant. The last variant of a product cannot be removed.
	DeleteVariant(ctx context.Context, variantID uuid.UUID) error

	UploadImage(ctx context.Context, productID uuid.UUID, input *UploadImageInput) (*entity.ProductImage, error)
	DeleteImage(ctx context.Context, productID, imageID uuid.UUID) error
}

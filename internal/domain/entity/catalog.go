package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Brand is a manufacturer or label products are sold under.
type Brand struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	LogoURL   string    `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category groups products. Categories may nest through ParentID.
type Category struct {
	ID        uuid.UUID  `json:"id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Product is a catalog entry. Prices and stock live on its variants.
type Product struct {
	ID                   uuid.UUID         `json:"id"`
	SKU                  string            `json:"sku"`
	Slug                 string            `json:"slug"`
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	CategoryID           uuid.UUID         `json:"category_id"`
	BrandID              *uuid.UUID        `json:"brand_id,omitempty"`
	IsBlock              bool              `json:"is_block"` // Hidden from the storefront and not purchasable.
	RequiresPrescription bool              `json:"requires_prescription"`
	Category             *Category         `json:"category,omitempty"`
	Brand                *Brand            `json:"brand,omitempty"`
	Variants             []*ProductVariant `json:"variants,omitempty"`
	Images               []*ProductImage   `json:"images,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

// IsPurchasable reports whether the product may be added to a cart or ordered.
func (p *Product) IsPurchasable() bool {
	return !p.IsBlock
}

// ProductVariant is a purchasable packaging of a product with its own price and stock.
type ProductVariant struct {
	ID              uuid.UUID        `json:"id"`
	ProductID       uuid.UUID        `json:"product_id"`
	PackageQuantity int              `json:"package_quantity"` // Units per package, at least 1.
	Price           decimal.Decimal  `json:"price"`
	DiscountPrice   *decimal.Decimal `json:"discount_price,omitempty"` // Nil when not on sale.
	Stock           int              `json:"stock"`
	ExpiryDate      *time.Time       `json:"expiry_date,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Validate checks the price and stock invariants of the variant.
func (v *ProductVariant) Validate() error {
	if v.PackageQuantity < 1 {
		return ErrInvalidPackageQuantity
	}
	if v.Price.IsNegative() {
		return ErrNegativePrice
	}
	if v.Stock < 0 {
		return ErrNegativeStock
	}
	if v.DiscountPrice != nil {
		if v.DiscountPrice.IsNegative() {
			return ErrNegativePrice
		}
		if v.DiscountPrice.GreaterThan(v.Price) {
			return ErrDiscountAbovePrice
		}
	}

	return nil
}

// EffectivePrice is the price a customer pays per package right now.
func (v *ProductVariant) EffectivePrice() decimal.Decimal {
	if v.DiscountPrice != nil {
		return *v.DiscountPrice
	}

	return v.Price
}

// UnitDiscount is the amount knocked off the list price per package.
func (v *ProductVariant) UnitDiscount() decimal.Decimal {
	return v.Price.Sub(v.EffectivePrice())
}

// ProductImage is an uploaded picture of a product.
type ProductImage struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	StorageKey string    `json:"-"`
	URL        string    `json:"url"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProductSort selects the ordering of a product listing.
type ProductSort string

const (
	ProductSortNewest    ProductSort = "newest"
	ProductSortPriceAsc  ProductSort = "price_asc"
	ProductSortPriceDesc ProductSort = "price_desc"
)

// IsValid checks if the sort is a known value.
func (s ProductSort) IsValid() bool {
	switch s {
	case ProductSortNewest, ProductSortPriceAsc, ProductSortPriceDesc:
		return true
	default:
		return false
	}
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	CategorySlug   string
	BrandSlug      string
	Query          string // Case-insensitive match on name or SKU.
	Sort           ProductSort
	IncludeBlocked bool // Back-office listings see blocked products too.
	Page           Page
}

// SearchResult groups the hits of a storefront search.
type SearchResult struct {
	Products   []*Product  `json:"products"`
	Brands     []*Brand    `json:"brands"`
	Categories []*Category `json:"categories"`
}

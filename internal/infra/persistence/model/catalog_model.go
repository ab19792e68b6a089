package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(120);unique;not null"`
	LogoURL   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// CategoryModel mirrors the 'categories' table. ParentID references categories.id.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Slug      string     `gorm:"type:varchar(120);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Deleted products are kept for order history.
type ProductModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SKU                  string     `gorm:"column:sku;type:varchar(64);unique;not null"`
	Slug                 string     `gorm:"type:varchar(200);unique;not null"`
	Name                 string     `gorm:"type:varchar(200);not null"`
	Description          string     `gorm:"type:text"`
	CategoryID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	BrandID              *uuid.UUID `gorm:"type:uuid;index"`
	IsBlock              bool       `gorm:"not null;default:false"`
	RequiresPrescription bool       `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`

	Category *CategoryModel        `gorm:"foreignKey:CategoryID"`
	Brand    *BrandModel           `gorm:"foreignKey:BrandID"`
	Variants []ProductVariantModel `gorm:"foreignKey:ProductID"`
	Images   []ProductImageModel   `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel mirrors the 'product_variants' table.
type ProductVariantModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	PackageQuantity int              `gorm:"not null;default:1"`
	Price           decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	DiscountPrice   *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Stock           int              `gorm:"not null;default:0"`
	ExpiryDate      *time.Time       `gorm:"type:date"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	StorageKey string    `gorm:"type:text;not null"`
	URL        string    `gorm:"column:url;type:text;not null"`
	Position   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

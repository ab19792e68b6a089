package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel mirrors the 'carts' table. A cart belongs to either a user or an anonymous session.
type CartModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	SessionID *string    `gorm:"type:varchar(64);uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. A variant appears at most once per cart.
type CartItemModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CartID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_variant,priority:1"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null"`
	VariantID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_variant,priority:2"`
	Quantity      int             `gorm:"not null"`
	PriceAtAdd    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountAtAdd decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Product *ProductModel        `gorm:"foreignKey:ProductID"`
	Variant *ProductVariantModel `gorm:"foreignKey:VariantID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

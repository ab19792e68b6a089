package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartOwner identifies whose cart a request operates on: a signed-in user or an
// anonymous session. UserID wins when both are set.
type CartOwner struct {
	UserID    *uuid.UUID
	SessionID string
}

// IsZero reports whether the owner carries neither a user nor a session.
func (o CartOwner) IsZero() bool {
	return o.UserID == nil && o.SessionID == ""
}

// Cart is the pre-checkout basket of a user or anonymous session.
type Cart struct {
	ID        uuid.UUID   `json:"id"`
	UserID    *uuid.UUID  `json:"user_id,omitempty"`
	SessionID string      `json:"session_id,omitempty"`
	Items     []*CartItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// CartItem is one variant line in a cart. PriceAtAdd and DiscountAtAdd are
// captured when the variant first enters the cart and never re-read from the catalog.
type CartItem struct {
	ID            uuid.UUID       `json:"id"`
	CartID        uuid.UUID       `json:"cart_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	VariantID     uuid.UUID       `json:"variant_id"`
	Quantity      int             `json:"quantity"`
	PriceAtAdd    decimal.Decimal `json:"price_at_add"`    // List price per package at add time.
	DiscountAtAdd decimal.Decimal `json:"discount_at_add"` // Discount per package at add time.
	Product       *Product        `json:"product,omitempty"`
	Variant       *ProductVariant `json:"variant,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// LineSubtotal is the list-price total of the line.
func (i *CartItem) LineSubtotal() decimal.Decimal {
	return i.PriceAtAdd.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineDiscount is the discount total of the line.
func (i *CartItem) LineDiscount() decimal.Decimal {
	return i.DiscountAtAdd.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// FindItemByVariant returns the line holding the variant, if any.
func (c *Cart) FindItemByVariant(variantID uuid.UUID) *CartItem {
	for _, item := range c.Items {
		if item.VariantID == variantID {
			return item
		}
	}

	return nil
}

// FindItem returns the line with the given id, if any.
func (c *Cart) FindItem(itemID uuid.UUID) *CartItem {
	for _, item := range c.Items {
		if item.ID == itemID {
			return item
		}
	}

	return nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Totals sums the snapshot prices of all lines.
func (c *Cart) Totals() CartTotals {
	totals := CartTotals{
		Subtotal:      decimal.Zero,
		DiscountTotal: decimal.Zero,
	}
	for _, item := range c.Items {
		totals.Subtotal = totals.Subtotal.Add(item.LineSubtotal())
		totals.DiscountTotal = totals.DiscountTotal.Add(item.LineDiscount())
		totals.ItemCount += item.Quantity
	}
	totals.Total = totals.Subtotal.Sub(totals.DiscountTotal)

	return totals
}

// CartTotals is the money summary of a cart.
type CartTotals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	Total         decimal.Decimal `json:"total"` // Subtotal minus DiscountTotal, before shipping.
	ItemCount     int             `json:"item_count"`
}

package service

import (
	"github.com/shopspring/decimal"
)

// ShippingQuote is the computed delivery fee for a destination.
type ShippingQuote struct {
	DistanceKm   float64         `json:"distance_km"`
	Fee          decimal.Decimal `json:"fee"`
	FreeShipping bool            `json:"free_shipping"`
}

// ShippingCalculator prices deliveries from the pharmacy to a destination.
type ShippingCalculator interface {
	// Quote computes the fee for delivering an order worth orderTotal to (lat, lng).
	// It returns ErrOutOfRange when the destination is beyond the delivery radius.
	Quote(lat, lng float64, orderTotal decimal.Decimal) (*ShippingQuote, error)
}

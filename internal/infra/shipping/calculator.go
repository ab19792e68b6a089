// Package shipping prices deliveries by great-circle distance from the pharmacy.
package shipping

import (
	"math"

	"pharmacy/config"
	"pharmacy/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/shopspring/decimal"
)

type calculator struct {
	origin                orb.Point
	baseFee               decimal.Decimal
	perKmFee              decimal.Decimal
	freeShippingThreshold decimal.Decimal
	maxDistanceKm         float64
}

// NewCalculator creates a ShippingCalculator from the shipping configuration.
func NewCalculator(cfg *config.Config) service.ShippingCalculator {
	sc := cfg.Shipping
	if sc == nil {
		sc = &config.ShippingConfig{}
	}

	return &calculator{
		origin:                orb.Point{sc.OriginLongitude, sc.OriginLatitude},
		baseFee:               sc.BaseFee,
		perKmFee:              sc.PerKmFee,
		freeShippingThreshold: sc.FreeShippingThreshold,
		maxDistanceKm:         sc.MaxDistanceKm,
	}
}

// Quote computes baseFee + perKmFee * ceil(distanceKm), waived at or above the free shipping threshold.
func (c *calculator) Quote(lat, lng float64, orderTotal decimal.Decimal) (*service.ShippingQuote, error) {
	distanceKm := geo.DistanceHaversine(c.origin, orb.Point{lng, lat}) / 1000
	if c.maxDistanceKm > 0 && distanceKm > c.maxDistanceKm {
		return nil, service.ErrOutOfRange
	}

	quote := &service.ShippingQuote{
		DistanceKm: math.Round(distanceKm*100) / 100,
	}

	if c.freeShippingThreshold.IsPositive() && orderTotal.GreaterThanOrEqual(c.freeShippingThreshold) {
		quote.Fee = decimal.Zero
		quote.FreeShipping = true

		return quote, nil
	}

	billedKm := decimal.NewFromFloat(math.Ceil(distanceKm))
	quote.Fee = c.baseFee.Add(c.perKmFee.Mul(billedKm)).Round(2)

	return quote, nil
}

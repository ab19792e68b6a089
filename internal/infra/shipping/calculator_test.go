package shipping

import (
	"testing"

	"pharmacy/config"
	"pharmacy/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(threshold string, maxKm float64) service.ShippingCalculator {
	return NewCalculator(&config.Config{
		Shipping: &config.ShippingConfig{
			OriginLatitude:        35.6892,
			OriginLongitude:       51.3890,
			BaseFee:               decimal.RequireFromString("20000"),
			PerKmFee:              decimal.RequireFromString("5000"),
			FreeShippingThreshold: decimal.RequireFromString(threshold),
			MaxDistanceKm:         maxKm,
		},
	})
}

func TestCalculator_Quote_SamePoint(t *testing.T) {
	calc := newTestCalculator("0", 0)

	quote, err := calc.Quote(35.6892, 51.3890, decimal.RequireFromString("100000"))

	require.NoError(t, err)
	assert.Zero(t, quote.DistanceKm)
	assert.True(t, quote.Fee.Equal(decimal.RequireFromString("20000")), quote.Fee.String())
	assert.False(t, quote.FreeShipping)
}

func TestCalculator_Quote_RoundsDistanceUp(t *testing.T) {
	calc := newTestCalculator("0", 0)

	// Roughly 2.2 km north of the origin, billed as 3 km.
	quote, err := calc.Quote(35.7092, 51.3890, decimal.Zero)

	require.NoError(t, err)
	assert.InDelta(t, 2.22, quote.DistanceKm, 0.05)
	assert.True(t, quote.Fee.Equal(decimal.RequireFromString("35000")), quote.Fee.String())
}

func TestCalculator_Quote_FreeShippingThreshold(t *testing.T) {
	calc := newTestCalculator("500000", 0)

	tests := []struct {
		name     string
		total    string
		wantFree bool
	}{
		{"below threshold", "499999.99", false},
		{"at threshold", "500000", true},
		{"above threshold", "750000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := calc.Quote(35.7092, 51.3890, decimal.RequireFromString(tt.total))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFree, quote.FreeShipping)
			if tt.wantFree {
				assert.True(t, quote.Fee.IsZero())
			} else {
				assert.True(t, quote.Fee.IsPositive())
			}
		})
	}
}

func TestCalculator_Quote_OutOfRange(t *testing.T) {
	calc := newTestCalculator("0", 10)

	// Isfahan is far outside a 10 km radius around Tehran.
	_, err := calc.Quote(32.6546, 51.6680, decimal.Zero)

	assert.ErrorIs(t, err, service.ErrOutOfRange)
}

func TestNewCalculator_NilConfig(t *testing.T) {
	calc := NewCalculator(&config.Config{})

	quote, err := calc.Quote(0, 0, decimal.Zero)

	require.NoError(t, err)
	assert.True(t, quote.Fee.IsZero())
}

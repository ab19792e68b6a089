package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Phone    string          `json:"phone" validate:"required,phone"`
	Platform string          `json:"platform" validate:"required,oneof=ios android web"`
	Quantity int             `json:"quantity" validate:"min=1"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     sampleRequest
		wantErr []string
	}{
		{
			name: "valid",
			req:  sampleRequest{Phone: "+98 912-345-6789", Platform: "web", Quantity: 1, Price: decimal.NewFromInt(10)},
		},
		{
			name:    "missing phone",
			req:     sampleRequest{Platform: "ios", Quantity: 1},
			wantErr: []string{"phone is required"},
		},
		{
			name:    "short phone",
			req:     sampleRequest{Phone: "12345", Platform: "ios", Quantity: 1},
			wantErr: []string{"phone must be a phone number"},
		},
		{
			name:    "unknown platform and zero quantity",
			req:     sampleRequest{Phone: "09123456789", Platform: "symbian"},
			wantErr: []string{"platform must be one of [ios android web]", "quantity must be at least 1"},
		},
		{
			name:    "negative price",
			req:     sampleRequest{Phone: "09123456789", Platform: "android", Quantity: 2, Price: decimal.NewFromInt(-1)},
			wantErr: []string{"price must be at least 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)

				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Fields)
		})
	}
}

package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		level    string
		wantSize int
	}{
		{name: "configured", size: 320, level: "H", wantSize: 320},
		{name: "lower case level", size: 200, level: "q", wantSize: 200},
		{name: "defaults", size: 0, level: "bogus", wantSize: defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.level)

			raw, err := svc.GenerateOrderQR(uuid.New(), "PH-20261016-ABC123")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(raw))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(PickupPayload{Type: pickupPayloadType, OrderID: orderID, OrderNumber: "PH-1"})
	require.NoError(t, err)

	t.Run("scanned payload", func(t *testing.T) {
		got, err := svc.ParseOrderQR(string(payload))
		require.NoError(t, err)
		assert.Equal(t, orderID, got)
	})

	t.Run("typed order id", func(t *testing.T) {
		got, err := svc.ParseOrderQR("  " + orderID.String() + "\n")
		require.NoError(t, err)
		assert.Equal(t, orderID, got)
	})
}

func TestQRCodeService_ParseOrderQR_Errors(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
		errText string
	}{
		{"not json", "PH-000042", "not a pickup code"},
		{"wrong type", `{"order_id":"` + uuid.NewString() + `","type":"prescription"}`, "unexpected code type"},
		{"bad order id", `{"order_id":"nope","type":"order_pickup"}`, "pickup code order id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseOrderQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

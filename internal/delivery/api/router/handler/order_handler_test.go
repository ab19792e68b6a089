package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	mockUsecase "pharmacy/internal/mocks/usecase"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderHandlerMocks struct {
	order    *mockUsecase.MockOrderUsecase
	shipping *mockUsecase.MockShippingUsecase
}

func createTestOrderHandler(t *testing.T) (*OrderHandler, orderHandlerMocks) {
	m := orderHandlerMocks{
		order:    mockUsecase.NewMockOrderUsecase(t),
		shipping: mockUsecase.NewMockShippingUsecase(t),
	}

	return NewOrderHandler(OrderHandlerParams{
		OrderUC:    m.order,
		ShippingUC: m.shipping,
		Logger:     newDiscardLogger(),
	}), m
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	h, m := createTestOrderHandler(t)
	e := newTestEcho()
	userID, addressID := uuid.New(), uuid.New()
	order := &entity.Order{
		ID:          uuid.New(),
		Number:      "PH-000123",
		UserID:      userID,
		Status:      entity.OrderStatusPending,
		ShippingFee: decimal.RequireFromString("60"),
		FinalTotal:  decimal.RequireFromString("240"),
	}

	m.order.EXPECT().
		PlaceOrder(mock.Anything, userID, mock.MatchedBy(func(input *usecase.PlaceOrderInput) bool {
			return input.AddressID == addressID && input.ShippingCost.Equal(decimal.RequireFromString("60"))
		})).
		Return(order, nil)

	body := `{"address_id":"` + addressID.String() + `","shipping_cost":"60.00"}`
	c, rec := newJSONContext(e, http.MethodPost, "/orders", body, &userID)

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got entity.Order
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, "PH-000123", got.Number)
	assert.True(t, got.FinalTotal.Equal(decimal.RequireFromString("240")))
}

func TestOrderHandler_PlaceOrder_ShippingCostChanged(t *testing.T) {
	h, m := createTestOrderHandler(t)
	e := newTestEcho()
	userID := uuid.New()

	m.order.EXPECT().
		PlaceOrder(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrShippingCostChanged.WithDetails("expected 80.00"))

	body := `{"address_id":"` + uuid.NewString() + `","shipping_cost":60}`
	c, rec := newJSONContext(e, http.MethodPost, "/orders", body, &userID)

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "SHIPPING_COST_CHANGED", env.Error.Code)
	assert.Equal(t, "expected 80.00", env.Error.Details)
}

func TestOrderHandler_PlaceOrder_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing address", body: `{"shipping_cost":60}`},
		{name: "negative shipping cost", body: `{"address_id":"` + uuid.NewString() + `","shipping_cost":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestOrderHandler(t)
			e := newTestEcho()
			userID := uuid.New()

			c, rec := newJSONContext(e, http.MethodPost, "/orders", tt.body, &userID)

			require.NoError(t, h.PlaceOrder(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestOrderHandler_PlaceOrder_Unauthenticated(t *testing.T) {
	h, _ := createTestOrderHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/orders", `{}`, nil)

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_GetMyOrder_OtherUsersOrder(t *testing.T) {
	h, m := createTestOrderHandler(t)
	e := newTestEcho()
	userID, orderID := uuid.New(), uuid.New()

	m.order.EXPECT().GetMyOrder(mock.Anything, userID, orderID).Return(nil, domainerrors.ErrOrderNotFound)

	c, rec := newJSONContext(e, http.MethodGet, "/orders/"+orderID.String(), "", &userID)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, h.GetMyOrder(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestOrderHandler_GetOrderQR(t *testing.T) {
	h, m := createTestOrderHandler(t)
	e := newTestEcho()
	userID, orderID := uuid.New(), uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	m.order.EXPECT().GetOrderQR(mock.Anything, userID, orderID).Return(png, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/orders/"+orderID.String()+"/qr", "", &userID)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, h.GetOrderQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOrderHandler_QuoteShipping_InvalidAddress(t *testing.T) {
	h, _ := createTestOrderHandler(t)
	e := newTestEcho()
	userID := uuid.New()

	c, rec := newJSONContext(e, http.MethodGet, "/shipping/cost?addressId=nope", "", &userID)

	require.NoError(t, h.QuoteShipping(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
}

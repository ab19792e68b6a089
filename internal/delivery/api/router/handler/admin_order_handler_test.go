package handler

import (
	"net/http"
	"testing"
	"time"

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

func createTestAdminOrderHandler(t *testing.T) (*AdminOrderHandler, *mockUsecase.MockOrderAdminUsecase) {
	orderAdminUC := mockUsecase.NewMockOrderAdminUsecase(t)

	return NewAdminOrderHandler(AdminOrderHandlerParams{
		OrderAdminUC: orderAdminUC,
		Logger:       newDiscardLogger(),
	}), orderAdminUC
}

func TestAdminOrderHandler_Refund_Partial(t *testing.T) {
	h, orderAdminUC := createTestAdminOrderHandler(t)
	e := newTestEcho()
	actorID, orderID, itemID := uuid.New(), uuid.New(), uuid.New()

	orderAdminUC.EXPECT().
		Refund(mock.Anything, actorID, orderID, mock.MatchedBy(func(input *usecase.RefundInput) bool {
			return input.Type == entity.RefundTypePartial &&
				input.Amount != nil && input.Amount.Equal(decimal.RequireFromString("25.50")) &&
				input.Restock &&
				len(input.Items) == 1 && input.Items[0].OrderItemID == itemID && input.Items[0].Quantity == 1
		})).
		Return(&usecase.RefundOutput{
			Refund: &entity.Refund{ID: uuid.New(), OrderID: orderID, Type: entity.RefundTypePartial, CreatedBy: actorID},
			Order:  &entity.Order{ID: orderID},
		}, nil)

	body := `{"type":"partial","amount":"25.50","restock":true,"reason":"damaged box",` +
		`"items":[{"order_item_id":"` + itemID.String() + `","quantity":1}]}`
	c, rec := newJSONContext(e, http.MethodPost, "/admin/orders/"+orderID.String()+"/refund", body, &actorID)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, h.Refund(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminOrderHandler_Refund_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown refund type",
			body:       `{"type":"store-credit"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "amount above remaining",
			body:       `{"type":"partial","amount":"9999"}`,
			ucErr:      domainerrors.ErrRefundAmountExceeded,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "REFUND_AMOUNT_EXCEEDED",
		},
		{
			name:       "order not paid",
			body:       `{"type":"full"}`,
			ucErr:      domainerrors.ErrOrderNotRefundable,
			wantStatus: http.StatusConflict,
			wantCode:   "ORDER_NOT_REFUNDABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, orderAdminUC := createTestAdminOrderHandler(t)
			e := newTestEcho()
			actorID, orderID := uuid.New(), uuid.New()

			if tt.ucErr != nil {
				orderAdminUC.EXPECT().Refund(mock.Anything, actorID, orderID, mock.Anything).Return(nil, tt.ucErr)
			}

			c, rec := newJSONContext(e, http.MethodPost, "/admin/orders/"+orderID.String()+"/refund", tt.body, &actorID)
			c.SetParamNames("id")
			c.SetParamValues(orderID.String())

			require.NoError(t, h.Refund(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestAdminOrderHandler_UpdateStatus_InvalidTransition(t *testing.T) {
	h, orderAdminUC := createTestAdminOrderHandler(t)
	e := newTestEcho()
	orderID := uuid.New()

	orderAdminUC.EXPECT().
		UpdateStatus(mock.Anything, orderID, entity.OrderStatus("refunded")).
		Return(nil, domainerrors.ErrInvalidStatusChange)

	c, rec := newJSONContext(e, http.MethodPut, "/admin/orders/"+orderID.String()+"/status", `{"status":"refunded"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", decodeEnvelope(t, rec).Error.Code)
}

func TestAdminOrderHandler_Stats_DateRange(t *testing.T) {
	h, orderAdminUC := createTestAdminOrderHandler(t)
	e := newTestEcho()

	orderAdminUC.EXPECT().
		Stats(mock.Anything, mock.MatchedBy(func(from *time.Time) bool {
			return from != nil && from.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		}), (*time.Time)(nil)).
		Return(&entity.OrderStats{}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/admin/stats?from=2026-01-01", "", nil)

	require.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOrderHandler_Stats_BadDate(t *testing.T) {
	h, _ := createTestAdminOrderHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodGet, "/admin/stats?to=yesterday", "", nil)

	require.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

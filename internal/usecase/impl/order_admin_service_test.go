package impl

import (
	"context"
	"testing"
	"time"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	mockSvc "pharmacy/internal/mocks/service"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderAdminFixtures struct {
	service   usecase.OrderAdminUsecase
	repos     *repoMocks
	publisher *mockSvc.MockEventPublisher
	qr        *mockSvc.MockQRCodeService
}

func createTestOrderAdminService(t *testing.T) orderAdminFixtures {
	repos := newRepoMocks(t)
	repos.expectTx()
	publisher := mockSvc.NewMockEventPublisher(t)
	qr := mockSvc.NewMockQRCodeService(t)

	svc := NewOrderAdminService(OrderAdminServiceParams{
		TxManager:  repos.txManager,
		OrderRepo:  repos.order,
		RefundRepo: repos.refund,
		Publisher:  publisher,
		QRService:  qr,
		Config:     newTestConfig(0),
		Logger:     newDiscardLogger(),
	})

	return orderAdminFixtures{service: svc, repos: repos, publisher: publisher, qr: qr}
}

// paidOrder has a final total of 300: 2 x 100 and 1 x 80, plus 20 shipping.
func paidOrder() *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Number:        "PH-20261016-K7Q2MX",
		Status:        entity.OrderStatusDelivered,
		PaymentStatus: entity.PaymentStatusPaid,
		RefundStatus:  entity.RefundStatusNone,
		Subtotal:      decimal.RequireFromString("280"),
		ShippingFee:   decimal.RequireFromString("20"),
		FinalTotal:    decimal.RequireFromString("300"),
		RefundedTotal: decimal.Zero,
		Items: []*entity.OrderItem{
			{ID: uuid.New(), VariantID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("100")},
			{ID: uuid.New(), VariantID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("80")},
		},
	}
}

func expectRefundedEvent(fx orderAdminFixtures, amount string) {
	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == entity.OrderEventRefunded && e.Amount == amount
		})).
		Return(nil)
}

func TestOrderAdminService_ListOrders(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()

	fx.repos.order.EXPECT().
		List(ctx, mock.MatchedBy(func(f entity.OrderFilter) bool {
			return f.Status == entity.OrderStatusPaid && f.Page.Size == 100
		})).
		Return(nil, int64(0), nil)

	result, err := fx.service.ListOrders(ctx, entity.OrderFilter{Status: entity.OrderStatusPaid, Page: entity.Page{Size: 500}})
	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestOrderAdminService_ListOrders_InvalidFilter(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()
	now := time.Now()
	earlier := now.Add(-time.Hour)

	_, err := fx.service.ListOrders(ctx, entity.OrderFilter{Status: "lost"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.ListOrders(ctx, entity.OrderFilter{From: &now, To: &earlier})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderAdminService_GetOrder(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()
	order := paidOrder()

	fx.repos.order.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.repos.refund.EXPECT().FindByOrderID(ctx, order.ID).Return(nil, nil)

	detail, err := fx.service.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, detail.Order)
	assert.NotNil(t, detail.Refunds)
}

func TestOrderAdminService_UpdateStatus(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending, PaymentStatus: entity.PaymentStatusUnpaid}

	fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.repos.order.EXPECT().
		Update(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Status == entity.OrderStatusPaid && o.PaymentStatus == entity.PaymentStatusPaid && o.PaidAt != nil
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == entity.OrderEventStatusChanged && e.Status == entity.OrderStatusPaid
		})).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, order.ID, entity.OrderStatusPaid)
	require.NoError(t, err)
	assert.True(t, updated.IsPaid())
}

func TestOrderAdminService_UpdateStatus_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		wantErr error
	}{
		{name: "skip ahead", from: entity.OrderStatusPending, to: entity.OrderStatusShipped, wantErr: domainerrors.ErrInvalidStatusChange},
		{name: "move backwards", from: entity.OrderStatusShipped, to: entity.OrderStatusPaid, wantErr: domainerrors.ErrInvalidStatusChange},
		{name: "cancel delivered", from: entity.OrderStatusDelivered, to: entity.OrderStatusCancelled, wantErr: domainerrors.ErrInvalidStatusChange},
		{name: "manual refunded", from: entity.OrderStatusDelivered, to: entity.OrderStatusRefunded, wantErr: domainerrors.ErrInvalidStatusChange},
		{name: "unknown status", from: entity.OrderStatusPending, to: "archived", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderAdminService(t)
			ctx := context.Background()
			order := &entity.Order{ID: uuid.New(), Status: tt.from}
			fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil).Maybe()

			_, err := fx.service.UpdateStatus(ctx, order.ID, tt.to)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			fx.repos.order.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderAdminService_UpdateStatus_CancelPaidOrderRestocks(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()
	order := paidOrder()
	order.Status = entity.OrderStatusProcessing

	for _, item := range order.Items {
		fx.repos.variant.EXPECT().IncrementStock(ctx, item.VariantID, item.Quantity).Return(nil)
		fx.repos.order.EXPECT().SetItemRestocked(ctx, item.ID, item.Quantity).Return(nil)
	}
	fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.repos.order.EXPECT().Update(ctx, order).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
}

func TestOrderAdminService_Refund_FullWithRestock(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()
	actorID := uuid.New()
	order := paidOrder()
	order.Items[0].RestockedQuantity = 1

	fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.repos.variant.EXPECT().IncrementStock(ctx, order.Items[0].VariantID, 1).Return(nil)
	fx.repos.order.EXPECT().SetItemRestocked(ctx, order.Items[0].ID, 2).Return(nil)
	fx.repos.variant.EXPECT().IncrementStock(ctx, order.Items[1].VariantID, 1).Return(nil)
	fx.repos.order.EXPECT().SetItemRestocked(ctx, order.Items[1].ID, 1).Return(nil)
	fx.repos.order.EXPECT().
		Update(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Status == entity.OrderStatusRefunded &&
				o.RefundStatus == entity.RefundStatusFull &&
				o.RefundedTotal.Equal(decimal.RequireFromString("300"))
		})).
		Return(nil)
	fx.repos.refund.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Refund) bool {
			return r.Type == entity.RefundTypeFull && r.CreatedBy == actorID && r.Restock && len(r.Items) == 2
		})).
		Return(nil)
	expectRefundedEvent(fx, "300.00")

	out, err := fx.service.Refund(ctx, actorID, order.ID, &usecase.RefundInput{Type: entity.RefundTypeFull, Restock: true, Reason: "damaged"})
	require.NoError(t, err)
	assert.Equal(t, "300", out.Refund.Amount.String())
	assert.Equal(t, entity.RefundStatusFull, out.Order.RefundStatus)
}

func TestOrderAdminService_Refund_PartialThenFull(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()
	order := paidOrder()
	amount := decimal.RequireFromString("120.50")

	fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.repos.order.EXPECT().Update(ctx, order).Return(nil)
	fx.repos.refund.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Refund")).Return(nil)
	expectRefundedEvent(fx, "120.50")
	expectRefundedEvent(fx, "179.50")

	out, err := fx.service.Refund(ctx, uuid.New(), order.ID, &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, entity.RefundStatusPartial, out.Order.RefundStatus)
	assert.Equal(t, entity.OrderStatusDelivered, out.Order.Status)
	assert.Empty(t, out.Refund.Items)

	// A full refund afterwards returns only what is left.
	out, err = fx.service.Refund(ctx, uuid.New(), order.ID, &usecase.RefundInput{Type: entity.RefundTypeFull})
	require.NoError(t, err)
	assert.Equal(t, "179.5", out.Refund.Amount.String())
	assert.Equal(t, entity.RefundStatusFull, out.Order.RefundStatus)
	assert.Equal(t, entity.OrderStatusRefunded, out.Order.Status)

	_, err = fx.service.Refund(ctx, uuid.New(), order.ID, &usecase.RefundInput{Type: entity.RefundTypeFull})
	assert.True(t, errors.Is(err, domainerrors.ErrOrderFullyRefunded))
}

func TestOrderAdminService_Refund_PartialRestock(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()
	order := paidOrder()
	amount := decimal.RequireFromString("100")
	line := order.Items[0]

	fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.repos.variant.EXPECT().IncrementStock(ctx, line.VariantID, 1).Return(nil)
	fx.repos.order.EXPECT().SetItemRestocked(ctx, line.ID, 1).Return(nil)
	fx.repos.order.EXPECT().Update(ctx, order).Return(nil)
	fx.repos.refund.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Refund) bool {
			return len(r.Items) == 1 && r.Items[0].OrderItemID == line.ID && r.Items[0].Quantity == 1
		})).
		Return(nil)
	expectRefundedEvent(fx, "100.00")

	_, err := fx.service.Refund(ctx, uuid.New(), order.ID, &usecase.RefundInput{
		Type:    entity.RefundTypePartial,
		Amount:  &amount,
		Restock: true,
		Items:   []*usecase.RefundItemInput{{OrderItemID: line.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, line.RestockedQuantity)
}

func TestOrderAdminService_Refund_PartialReachingRemainingIsFull(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()
	order := paidOrder()
	order.RefundedTotal = decimal.RequireFromString("0.01")
	order.RefundStatus = entity.RefundStatusPartial
	amount := decimal.RequireFromString("299.99")

	fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.repos.order.EXPECT().
		Update(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.RefundStatus == entity.RefundStatusFull &&
				o.Status == entity.OrderStatusRefunded &&
				o.RefundedTotal.Equal(decimal.RequireFromString("300"))
		})).
		Return(nil)
	fx.repos.refund.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Refund")).Return(nil)
	expectRefundedEvent(fx, "299.99")

	out, err := fx.service.Refund(ctx, uuid.New(), order.ID, &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &amount})
	require.NoError(t, err)
	assert.True(t, out.Order.RemainingRefundable().IsZero())
}

func TestOrderAdminService_Refund_Rejections(t *testing.T) {
	over := decimal.RequireFromString("300.01")
	zero := decimal.Zero
	ten := decimal.RequireFromString("10")
	subCent := decimal.RequireFromString("0.001")
	almostAll := decimal.RequireFromString("299.999")

	tests := []struct {
		name    string
		mutate  func(order *entity.Order)
		input   func(order *entity.Order) *usecase.RefundInput
		wantErr error
	}{
		{
			name:   "unpaid order",
			mutate: func(order *entity.Order) { order.PaymentStatus = entity.PaymentStatusUnpaid },
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypeFull}
			},
			wantErr: domainerrors.ErrOrderNotRefundable,
		},
		{
			name: "amount above remaining",
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &over}
			},
			wantErr: domainerrors.ErrRefundAmountExceeded,
		},
		{
			name:   "amount above remaining after earlier refund",
			mutate: func(order *entity.Order) { order.RefundedTotal = decimal.RequireFromString("295") },
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &ten}
			},
			wantErr: domainerrors.ErrRefundAmountExceeded,
		},
		{
			name: "partial without amount",
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial}
			},
			wantErr: domainerrors.ErrInvalidRefundAmount,
		},
		{
			name: "partial with zero amount",
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &zero}
			},
			wantErr: domainerrors.ErrInvalidRefundAmount,
		},
		{
			name: "partial amount below one cent",
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &subCent}
			},
			wantErr: domainerrors.ErrInvalidRefundAmount,
		},
		{
			name: "partial amount with three decimals",
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &almostAll}
			},
			wantErr: domainerrors.ErrInvalidRefundAmount,
		},
		{
			name: "items without restock",
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &ten, Items: []*usecase.RefundItemInput{
					{OrderItemID: order.Items[0].ID, Quantity: 1},
				}}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "partial restock without items",
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &ten, Restock: true}
			},
			wantErr: domainerrors.ErrRestockItemsRequired,
		},
		{
			name: "restock more than sold",
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &ten, Restock: true, Items: []*usecase.RefundItemInput{
					{OrderItemID: order.Items[0].ID, Quantity: 2},
					{OrderItemID: order.Items[0].ID, Quantity: 1},
				}}
			},
			wantErr: domainerrors.ErrRefundRestockExceeded,
		},
		{
			name:   "restock units already returned",
			mutate: func(order *entity.Order) { order.Items[1].RestockedQuantity = 1 },
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &ten, Restock: true, Items: []*usecase.RefundItemInput{
					{OrderItemID: order.Items[1].ID, Quantity: 1},
				}}
			},
			wantErr: domainerrors.ErrRefundRestockExceeded,
		},
		{
			name: "restock unknown line",
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &ten, Restock: true, Items: []*usecase.RefundItemInput{
					{OrderItemID: uuid.New(), Quantity: 1},
				}}
			},
			wantErr: domainerrors.ErrOrderItemNotFound,
		},
		{
			name: "restock zero units",
			input: func(order *entity.Order) *usecase.RefundInput {
				return &usecase.RefundInput{Type: entity.RefundTypePartial, Amount: &ten, Restock: true, Items: []*usecase.RefundItemInput{
					{OrderItemID: order.Items[0].ID, Quantity: 0},
				}}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderAdminService(t)
			ctx := context.Background()
			order := paidOrder()
			if tt.mutate != nil {
				tt.mutate(order)
			}
			fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

			_, err := fx.service.Refund(ctx, uuid.New(), order.ID, tt.input(order))
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			fx.repos.refund.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderAdminService_Refund_InvalidType(t *testing.T) {
	fx := createTestOrderAdminService(t)

	_, err := fx.service.Refund(context.Background(), uuid.New(), uuid.New(), &usecase.RefundInput{Type: "store-credit"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderAdminService_ResolveQR(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()
	order := paidOrder()

	fx.qr.EXPECT().ParseOrderQR("pharmacy:order:payload").Return(order.ID, nil)
	fx.qr.EXPECT().ParseOrderQR("garbage").Return(uuid.Nil, assert.AnError)
	fx.repos.order.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.repos.refund.EXPECT().FindByOrderID(ctx, order.ID).Return([]*entity.Refund{}, nil)

	detail, err := fx.service.ResolveQR(ctx, "pharmacy:order:payload")
	require.NoError(t, err)
	assert.Equal(t, order.Number, detail.Number)

	_, err = fx.service.ResolveQR(ctx, "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRCode))
}

func TestOrderAdminService_ResolveQR_UnknownOrder(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.qr.EXPECT().ParseOrderQR("payload").Return(orderID, nil)
	fx.repos.order.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.ResolveQR(ctx, "payload")
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderAdminService_Stats(t *testing.T) {
	fx := createTestOrderAdminService(t)
	ctx := context.Background()
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	stats := &entity.OrderStats{TotalOrders: 3, GrossRevenue: decimal.RequireFromString("900")}

	fx.repos.order.EXPECT().Stats(ctx, &from, &to).Return(stats, nil)

	got, err := fx.service.Stats(ctx, &from, &to)
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	_, err = fx.service.Stats(ctx, &to, &from)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

package impl

import (
	"context"
	"slices"
	"testing"

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

type orderFixtures struct {
	service    usecase.OrderUsecase
	repos      *repoMocks
	calculator *mockSvc.MockShippingCalculator
	publisher  *mockSvc.MockEventPublisher
	qr         *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderFixtures {
	repos := newRepoMocks(t)
	repos.expectTx()
	calculator := mockSvc.NewMockShippingCalculator(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qr := mockSvc.NewMockQRCodeService(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager:  repos.txManager,
		OrderRepo:  repos.order,
		Calculator: calculator,
		Publisher:  publisher,
		QRService:  qr,
		Config:     newTestConfig(0),
		Logger:     newDiscardLogger(),
	})

	return orderFixtures{service: svc, repos: repos, calculator: calculator, publisher: publisher, qr: qr}
}

// checkoutCart builds a user cart with two lines: 2 x 100 (10 off) and 1 x 50.
func checkoutCart(userID uuid.UUID) (*entity.Cart, []*entity.ProductVariant) {
	productA := &entity.Product{ID: uuid.New(), Name: "Paracetamol 500mg", SKU: "PARA-500"}
	productB := &entity.Product{ID: uuid.New(), Name: "Vitamin C", SKU: "VITC"}
	variantA := &entity.ProductVariant{ID: uuid.New(), ProductID: productA.ID, PackageQuantity: 10, Price: decimal.RequireFromString("100"), Stock: 5}
	variantB := &entity.ProductVariant{ID: uuid.New(), ProductID: productB.ID, PackageQuantity: 30, Price: decimal.RequireFromString("50"), Stock: 1}

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: &userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: productA.ID, VariantID: variantA.ID, Quantity: 2, PriceAtAdd: decimal.RequireFromString("100"), DiscountAtAdd: decimal.RequireFromString("10"), Product: productA, Variant: variantA},
			{ID: uuid.New(), ProductID: productB.ID, VariantID: variantB.ID, Quantity: 1, PriceAtAdd: decimal.RequireFromString("50"), DiscountAtAdd: decimal.Zero, Product: productB, Variant: variantB},
		},
	}

	return cart, []*entity.ProductVariant{variantA, variantB}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	cart, variants := checkoutCart(userID)
	address := &entity.Address{ID: uuid.New(), UserID: userID, FullName: "Nguyen Van A", Latitude: 10.7, Longitude: 106.6}
	orderID := uuid.New()

	fx.repos.cart.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.repos.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	fx.calculator.EXPECT().
		Quote(10.7, 106.6, mock.MatchedBy(func(total decimal.Decimal) bool { return total.Equal(decimal.RequireFromString("230")) })).
		Return(&service.ShippingQuote{Fee: decimal.RequireFromString("15")}, nil)

	var locked []string
	for _, variant := range variants {
		fx.repos.variant.EXPECT().
			FindByIDForUpdate(ctx, variant.ID).
			Run(func(ctx context.Context, id uuid.UUID) { locked = append(locked, id.String()) }).
			Return(variant, nil)
	}
	fx.repos.variant.EXPECT().DecrementStock(ctx, variants[0].ID, 2).Return(nil)
	fx.repos.variant.EXPECT().DecrementStock(ctx, variants[1].ID, 1).Return(nil)

	fx.repos.order.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.UserID == userID &&
				o.Status == entity.OrderStatusPending &&
				o.PaymentStatus == entity.PaymentStatusUnpaid &&
				o.Subtotal.Equal(decimal.RequireFromString("250")) &&
				o.DiscountTotal.Equal(decimal.RequireFromString("20")) &&
				o.FinalTotal.Equal(decimal.RequireFromString("245")) &&
				o.ShippingAddress.FullName == "Nguyen Van A" &&
				len(o.Items) == 2 &&
				o.Number != ""
		})).
		Run(func(ctx context.Context, o *entity.Order) { o.ID = orderID }).
		Return(nil)
	fx.repos.cart.EXPECT().ClearItems(ctx, cart.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == entity.OrderEventCreated && e.OrderID == orderID.String() && e.FinalTotal == "245.00"
		})).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		AddressID:    address.ID,
		ShippingCost: decimal.RequireFromString("15.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.True(t, slices.IsSorted(locked), "variants must be locked in id order")

	for _, item := range order.Items {
		assert.NotEmpty(t, item.ProductName)
		assert.NotEmpty(t, item.SKU)
	}
}

func TestOrderService_PlaceOrder_ShippingCostChanged(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	cart, _ := checkoutCart(userID)
	address := &entity.Address{ID: uuid.New(), UserID: userID}

	fx.repos.cart.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.repos.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	fx.calculator.EXPECT().Quote(mock.Anything, mock.Anything, mock.Anything).
		Return(&service.ShippingQuote{Fee: decimal.RequireFromString("20")}, nil)

	_, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{AddressID: address.ID, ShippingCost: decimal.RequireFromString("15")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrShippingCostChanged))

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "20.00", appErr.Details())
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repos.cart.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound).Once()
	_, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{AddressID: uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))

	fx.repos.cart.EXPECT().FindByUserID(ctx, userID).Return(&entity.Cart{ID: uuid.New()}, nil).Once()
	_, err = fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{AddressID: uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestOrderService_PlaceOrder_StockFailures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx orderFixtures, variants []*entity.ProductVariant)
		mutate  func(cart *entity.Cart)
		wantErr error
	}{
		{
			name: "stock below requested quantity",
			setup: func(fx orderFixtures, variants []*entity.ProductVariant) {
				variants[0].Stock = 1
				for _, v := range variants {
					fx.repos.variant.EXPECT().FindByIDForUpdate(mock.Anything, v.ID).Return(v, nil).Maybe()
					fx.repos.variant.EXPECT().DecrementStock(mock.Anything, v.ID, mock.Anything).Return(nil).Maybe()
				}
			},
			wantErr: domainerrors.ErrOutOfStock,
		},
		{
			name: "concurrent checkout took the stock",
			setup: func(fx orderFixtures, variants []*entity.ProductVariant) {
				for _, v := range variants {
					fx.repos.variant.EXPECT().FindByIDForUpdate(mock.Anything, v.ID).Return(v, nil).Maybe()
					fx.repos.variant.EXPECT().DecrementStock(mock.Anything, v.ID, mock.Anything).Return(repository.ErrInsufficientStock).Maybe()
				}
			},
			wantErr: domainerrors.ErrOutOfStock,
		},
		{
			name: "variant deleted",
			setup: func(fx orderFixtures, variants []*entity.ProductVariant) {
				for _, v := range variants {
					fx.repos.variant.EXPECT().FindByIDForUpdate(mock.Anything, v.ID).Return(nil, repository.ErrVariantNotFound).Maybe()
				}
			},
			wantErr: domainerrors.ErrProductUnavailable,
		},
		{
			name:   "product blocked after adding to cart",
			setup:  func(fx orderFixtures, variants []*entity.ProductVariant) {},
			mutate: func(cart *entity.Cart) { cart.Items[0].Product.IsBlock = true },
			// Lines are processed in variant order, so the blocked line may come second.
			wantErr: domainerrors.ErrProductUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			userID := uuid.New()
			cart, variants := checkoutCart(userID)
			if tt.mutate != nil {
				tt.mutate(cart)
				for _, v := range variants {
					fx.repos.variant.EXPECT().FindByIDForUpdate(mock.Anything, v.ID).Return(v, nil).Maybe()
					fx.repos.variant.EXPECT().DecrementStock(mock.Anything, v.ID, mock.Anything).Return(nil).Maybe()
				}
			}
			address := &entity.Address{ID: uuid.New(), UserID: userID}

			fx.repos.cart.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
			fx.repos.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
			fx.calculator.EXPECT().Quote(mock.Anything, mock.Anything, mock.Anything).
				Return(&service.ShippingQuote{Fee: decimal.Zero}, nil)
			tt.setup(fx, variants)

			_, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{AddressID: address.ID, ShippingCost: decimal.Zero})
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			fx.repos.order.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_GetMyOrder_OtherUser(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	fx.repos.order.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GetMyOrder(ctx, uuid.New(), order.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListMyOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New(), UserID: userID}}

	fx.repos.order.EXPECT().
		List(ctx, mock.MatchedBy(func(f entity.OrderFilter) bool {
			return f.UserID != nil && *f.UserID == userID && f.Page.Number == 1 && f.Page.Size == 20
		})).
		Return(orders, int64(1), nil)

	result, err := fx.service.ListMyOrders(ctx, userID, entity.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	assert.Len(t, result.Items, 1)
}

func TestOrderService_CancelMyOrder_RestocksItems(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	itemA := &entity.OrderItem{ID: uuid.New(), VariantID: uuid.New(), Quantity: 2}
	itemB := &entity.OrderItem{ID: uuid.New(), VariantID: uuid.New(), Quantity: 1}
	order := &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusPending, Items: []*entity.OrderItem{itemA, itemB}}

	fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.repos.variant.EXPECT().IncrementStock(ctx, itemA.VariantID, 2).Return(nil)
	fx.repos.variant.EXPECT().IncrementStock(ctx, itemB.VariantID, 1).Return(repository.ErrVariantNotFound)
	fx.repos.order.EXPECT().SetItemRestocked(ctx, itemA.ID, 2).Return(nil)
	fx.repos.order.EXPECT().SetItemRestocked(ctx, itemB.ID, 1).Return(nil)
	fx.repos.order.EXPECT().
		Update(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Status == entity.OrderStatusCancelled && o.CancelledAt != nil
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == entity.OrderEventStatusChanged && e.Status == entity.OrderStatusCancelled
		})).
		Return(assert.AnError)

	cancelled, err := fx.service.CancelMyOrder(ctx, userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 2, itemA.RestockedQuantity)
	assert.Equal(t, 1, itemB.RestockedQuantity)
}

func TestOrderService_CancelMyOrder_Rejections(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		order   *entity.Order
		wantErr error
	}{
		{
			name:    "paid order",
			order:   &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusPaid},
			wantErr: domainerrors.ErrOrderNotCancellable,
		},
		{
			name:    "already cancelled",
			order:   &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusCancelled},
			wantErr: domainerrors.ErrOrderNotCancellable,
		},
		{
			name:    "another user's order",
			order:   &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusPending},
			wantErr: domainerrors.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			fx.repos.order.EXPECT().FindByIDForUpdate(ctx, tt.order.ID).Return(tt.order, nil)

			_, err := fx.service.CancelMyOrder(ctx, userID, tt.order.ID)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestOrderService_GetOrderQR(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID, Number: "PH-20261016-ABC123"}

	fx.repos.order.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.qr.EXPECT().GenerateOrderQR(order.ID, order.Number).Return([]byte("png"), nil)

	png, err := fx.service.GetOrderQR(ctx, userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

package impl

import (
	"context"
	"testing"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	mockSvc "pharmacy/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShippingService_QuoteShipping(t *testing.T) {
	repos := newRepoMocks(t)
	calculator := mockSvc.NewMockShippingCalculator(t)
	svc := NewShippingService(repos.address, repos.cart, calculator)
	ctx := context.Background()

	userID := uuid.New()
	address := &entity.Address{ID: uuid.New(), UserID: userID, Latitude: 10.77, Longitude: 106.70}
	cart := &entity.Cart{Items: []*entity.CartItem{
		{Quantity: 3, PriceAtAdd: decimal.RequireFromString("50"), DiscountAtAdd: decimal.RequireFromString("5")},
	}}
	quote := &service.ShippingQuote{DistanceKm: 4.2, Fee: decimal.RequireFromString("15000")}

	repos.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	repos.cart.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	calculator.EXPECT().
		Quote(10.77, 106.70, mock.MatchedBy(func(total decimal.Decimal) bool { return total.Equal(decimal.RequireFromString("135")) })).
		Return(quote, nil)

	got, err := svc.QuoteShipping(ctx, userID, address.ID)
	require.NoError(t, err)
	assert.Equal(t, quote, got)
}

func TestShippingService_QuoteShipping_EmptyCart(t *testing.T) {
	repos := newRepoMocks(t)
	calculator := mockSvc.NewMockShippingCalculator(t)
	svc := NewShippingService(repos.address, repos.cart, calculator)
	ctx := context.Background()

	userID := uuid.New()
	address := &entity.Address{ID: uuid.New(), UserID: userID}

	repos.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	repos.cart.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)
	calculator.EXPECT().
		Quote(0.0, 0.0, mock.MatchedBy(func(total decimal.Decimal) bool { return total.IsZero() })).
		Return(&service.ShippingQuote{Fee: decimal.RequireFromString("20000")}, nil)

	got, err := svc.QuoteShipping(ctx, userID, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "20000", got.Fee.String())
}

func TestShippingService_QuoteShipping_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(repos *repoMocks, calculator *mockSvc.MockShippingCalculator, userID, addressID uuid.UUID)
		wantErr error
	}{
		{
			name: "address of another user",
			setup: func(repos *repoMocks, calculator *mockSvc.MockShippingCalculator, userID, addressID uuid.UUID) {
				repos.address.EXPECT().FindAddressByID(mock.Anything, addressID).Return(&entity.Address{ID: addressID, UserID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrAddressOwnershipViolation,
		},
		{
			name: "unknown address",
			setup: func(repos *repoMocks, calculator *mockSvc.MockShippingCalculator, userID, addressID uuid.UUID) {
				repos.address.EXPECT().FindAddressByID(mock.Anything, addressID).Return(nil, repository.ErrAddressNotFound)
			},
			wantErr: domainerrors.ErrAddressNotFound,
		},
		{
			name: "outside delivery radius",
			setup: func(repos *repoMocks, calculator *mockSvc.MockShippingCalculator, userID, addressID uuid.UUID) {
				repos.address.EXPECT().FindAddressByID(mock.Anything, addressID).Return(&entity.Address{ID: addressID, UserID: userID}, nil)
				repos.cart.EXPECT().FindByUserID(mock.Anything, userID).Return(nil, repository.ErrCartNotFound)
				calculator.EXPECT().Quote(mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrOutOfRange)
			},
			wantErr: domainerrors.ErrAddressOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newRepoMocks(t)
			calculator := mockSvc.NewMockShippingCalculator(t)
			svc := NewShippingService(repos.address, repos.cart, calculator)
			userID, addressID := uuid.New(), uuid.New()
			tt.setup(repos, calculator, userID, addressID)

			_, err := svc.QuoteShipping(context.Background(), userID, addressID)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

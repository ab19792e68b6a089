package impl

import (
	"context"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type shippingService struct {
	addressRepo repository.AddressRepository
	cartRepo    repository.CartRepository
	calculator  service.ShippingCalculator
}

// NewShippingService creates a new shipping service instance
func NewShippingService(
	addressRepo repository.AddressRepository,
	cartRepo repository.CartRepository,
	calculator service.ShippingCalculator,
) usecase.ShippingUsecase {
	return &shippingService{
		addressRepo: addressRepo,
		cartRepo:    cartRepo,
		calculator:  calculator,
	}
}

// QuoteShipping prices delivery of the user's current cart to one of their addresses.
func (s *shippingService) QuoteShipping(ctx context.Context, userID, addressID uuid.UUID) (*service.ShippingQuote, error) {
	address, err := findOwnedAddress(ctx, s.addressRepo, userID, addressID)
	if err != nil {
		return nil, err
	}

	cart, err := findCart(ctx, s.cartRepo, entity.CartOwner{UserID: &userID})
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	if cart != nil {
		total = cart.Totals().Total
	}

	return quoteShipping(s.calculator, address, total)
}

func quoteShipping(calculator service.ShippingCalculator, address *entity.Address, total decimal.Decimal) (*service.ShippingQuote, error) {
	quote, err := calculator.Quote(address.Latitude, address.Longitude, total)
	if err != nil {
		return nil, mapRepoError(err, "failed to quote shipping", mapping(service.ErrOutOfRange, domainerrors.ErrAddressOutOfRange))
	}

	return quote, nil
}

package usecase

import (
	"context"

	"pharmacy/internal/domain/service"

	"github.com/google/uuid"
)

// ShippingUsecase quotes the delivery fee of the user's current cart to one of their addresses.
type ShippingUsecase interface {
	QuoteShipping(ctx context.Context, userID, addressID uuid.UUID) (*service.ShippingQuote, error)
}

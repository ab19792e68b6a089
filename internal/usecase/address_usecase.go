package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput contains the editable fields of an address.
type AddressInput struct {
	FullName   string
	Phone      string
	Province   string
	City       string
	Street     string
	PostalCode string
	Latitude   float64
	Longitude  float64
	IsDefault  bool
}

// AddressUsecase defines the interface for delivery address management.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, userID uuid.UUID, input *AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)

	// DeleteAddress removes the address. Deleting the default promotes the oldest remaining address.
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error

	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)
}

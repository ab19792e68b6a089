package impl

import (
	"context"
	"strings"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"
	"pharmacy/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
}

// NewAddressService creates a new address service instance
func NewAddressService(txManager repository.TransactionManager, addressRepo repository.AddressRepository) usecase.AddressUsecase {
	return &addressService{
		txManager:   txManager,
		addressRepo: addressRepo,
	}
}

// ListAddresses retrieves all addresses of a user, default first
func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := s.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	return addresses, nil
}

// CreateAddress adds an address. The first address of a user always becomes the default.
func (s *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	address := &entity.Address{UserID: userID}
	applyAddressInput(address, input)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		count, err := addressRepo.CountAddressesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}
		if count == 0 {
			address.IsDefault = true
		}

		if address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create address transaction")
	}

	return address, nil
}

// UpdateAddress replaces the address fields. The default flag can be moved here but never dropped.
func (s *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	var updated *entity.Address

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := findOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		wasDefault := address.IsDefault
		applyAddressInput(address, input)
		address.IsDefault = wasDefault || input.IsDefault

		if address.IsDefault && !wasDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return mapRepoError(err, "failed to update address", mapping(repository.ErrAddressNotFound, domainerrors.ErrAddressNotFound))
		}
		updated = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update address transaction")
	}

	return updated, nil
}

// DeleteAddress removes an address. Deleting the default promotes the oldest remaining one.
func (s *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := findOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.DeleteAddress(ctx, addressID); err != nil {
			return mapRepoError(err, "failed to delete address", mapping(repository.ErrAddressNotFound, domainerrors.ErrAddressNotFound))
		}
		if !address.IsDefault {
			return nil
		}

		remaining, err := addressRepo.FindAddressesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find remaining addresses")
		}
		if len(remaining) == 0 {
			return nil
		}

		// No default is left, so the list is ordered oldest first.
		promoted := remaining[0]
		promoted.IsDefault = true
		if err := addressRepo.UpdateAddress(ctx, promoted); err != nil {
			return errors.Wrap(err, "failed to promote default address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete address transaction")
	}

	return nil
}

// SetDefaultAddress makes the address the user's only default.
func (s *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	var updated *entity.Address

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := findOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}
		if address.IsDefault {
			updated = address

			return nil
		}

		if err := addressRepo.ClearDefault(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear default address")
		}
		address.IsDefault = true
		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to set default address")
		}
		updated = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute set default address transaction")
	}

	return updated, nil
}

// findOwnedAddress loads the address and verifies ownership
func findOwnedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find address by ID", mapping(repository.ErrAddressNotFound, domainerrors.ErrAddressNotFound))
	}
	if address.UserID != userID {
		return nil, domainerrors.ErrAddressOwnershipViolation.WrapMessage("address belongs to another user")
	}

	return address, nil
}

func applyAddressInput(address *entity.Address, input *usecase.AddressInput) {
	address.FullName = strings.TrimSpace(input.FullName)
	address.Phone = util.NormalizePhone(input.Phone)
	address.Province = strings.TrimSpace(input.Province)
	address.City = strings.TrimSpace(input.City)
	address.Street = strings.TrimSpace(input.Street)
	address.PostalCode = strings.TrimSpace(input.PostalCode)
	address.Latitude = input.Latitude
	address.Longitude = input.Longitude
	address.IsDefault = input.IsDefault
}

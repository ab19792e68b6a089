package impl

import (
	"context"
	"strings"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var devicePlatforms = map[string]bool{"ios": true, "android": true, "web": true}

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	if !devicePlatforms[platform] {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be ios, android or web")
	}
	token, deviceID := strings.TrimSpace(input.FCMToken), strings.TrimSpace(input.DeviceID)
	if token == "" || deviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}

	device := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: token,
		DeviceID: deviceID,
		Platform: platform,
		IsActive: true,
	}
	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, mapRepoError(err, "failed to register device", mapping(repository.ErrUserNotFound, domainerrors.ErrUserNotFound))
	}

	return device, nil
}

func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}
	if err := s.checkOwner(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return mapRepoError(err, "failed to update FCM token", mapping(repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound))
	}

	return nil
}

func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.ListActiveDevices(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if err := s.checkOwner(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		return mapRepoError(err, "failed to deactivate device", mapping(repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound))
	}

	return nil
}

func (s *deviceService) checkOwner(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return mapRepoError(err, "failed to find device", mapping(repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound))
	}
	if device.UserID != userID {
		return domainerrors.ErrForbidden.WrapMessage("device belongs to another user")
	}

	return nil
}

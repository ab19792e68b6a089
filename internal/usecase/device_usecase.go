package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
)

type RegisterDeviceInput struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase manages where a customer's order notifications are pushed.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per client device id.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}

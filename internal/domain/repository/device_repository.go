package repository

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push targets of customers. A user has at most
// one row per client device id.
type DeviceRepository interface {
	// UpsertDevice inserts the device or, when the user already registered the
	// same device id, replaces its token and platform and reactivates it.
	// The stored row is copied back into device.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	ListActiveDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the token of a device and reactivates it.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	// DeactivateByTokens is used after a send reports tokens as unregistered.
	DeactivateByTokens(ctx context.Context, tokens []string) error
}

package impl

import (
	"context"
	"testing"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	repos := newRepoMocks(t)
	svc := NewDeviceService(repos.device)
	ctx := context.Background()
	userID := uuid.New()
	storedID := uuid.New()

	repos.device.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.UserID == userID && d.DeviceID == "phone" && d.Platform == "android" && d.FCMToken == "token-1"
		})).
		Run(func(_ context.Context, d *entity.UserDevice) {
			// An existing registration keeps its original id.
			d.ID = storedID
		}).
		Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{FCMToken: " token-1 ", DeviceID: "phone", Platform: " Android "})
	require.NoError(t, err)
	assert.Equal(t, storedID, device.ID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterDeviceInput
	}{
		{name: "unknown platform", input: usecase.RegisterDeviceInput{FCMToken: "t", DeviceID: "d", Platform: "symbian"}},
		{name: "blank token", input: usecase.RegisterDeviceInput{FCMToken: "  ", DeviceID: "d", Platform: "ios"}},
		{name: "blank device id", input: usecase.RegisterDeviceInput{FCMToken: "t", Platform: "web"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newRepoMocks(t)
			svc := NewDeviceService(repos.device)

			_, err := svc.RegisterDevice(context.Background(), uuid.New(), &tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestDeviceService_RegisterDevice_UnknownUser(t *testing.T) {
	repos := newRepoMocks(t)
	svc := NewDeviceService(repos.device)

	repos.device.EXPECT().UpsertDevice(mock.Anything, mock.Anything).Return(repository.ErrUserNotFound)

	_, err := svc.RegisterDevice(context.Background(), uuid.New(), &usecase.RegisterDeviceInput{FCMToken: "t", DeviceID: "d", Platform: "ios"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		setup   func(repos *repoMocks, deviceID uuid.UUID)
		wantErr error
	}{
		{
			name: "own device",
			setup: func(repos *repoMocks, deviceID uuid.UUID) {
				repos.device.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
				repos.device.EXPECT().UpdateFCMToken(mock.Anything, deviceID, "fresh").Return(nil)
			},
		},
		{
			name: "another user's device",
			setup: func(repos *repoMocks, deviceID uuid.UUID) {
				repos.device.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "unknown device",
			setup: func(repos *repoMocks, deviceID uuid.UUID) {
				repos.device.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newRepoMocks(t)
			svc := NewDeviceService(repos.device)
			deviceID := uuid.New()
			tt.setup(repos, deviceID)

			err := svc.UpdateFCMToken(context.Background(), userID, deviceID, "fresh")
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	repos := newRepoMocks(t)
	svc := NewDeviceService(repos.device)
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	repos.device.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	repos.device.EXPECT().DeactivateDevice(ctx, deviceID).Return(nil)

	require.NoError(t, svc.DeactivateDevice(ctx, userID, deviceID))
}

func TestDeviceService_ListDevices(t *testing.T) {
	repos := newRepoMocks(t)
	svc := NewDeviceService(repos.device)
	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: userID, IsActive: true}}

	repos.device.EXPECT().ListActiveDevices(ctx, userID).Return(devices, nil)

	got, err := svc.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

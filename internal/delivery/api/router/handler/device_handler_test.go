package handler

import (
	"net/http"
	"testing"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	mockUsecase "pharmacy/internal/mocks/usecase"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUsecase.MockDeviceUsecase) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()}), deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	h, deviceUC := createTestDeviceHandler(t)
	e := newTestEcho()
	userID := uuid.New()

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, userID, &usecase.RegisterDeviceInput{FCMToken: "fcm-1", DeviceID: "pixel-8", Platform: "android"}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "pixel-8", IsActive: true}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/devices", `{"fcm_token":"fcm-1","device_id":"pixel-8","platform":"android"}`, &userID)

	require.NoError(t, h.RegisterDevice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_RegisterDevice_MissingToken(t *testing.T) {
	h, _ := createTestDeviceHandler(t)
	e := newTestEcho()
	userID := uuid.New()

	c, rec := newJSONContext(e, http.MethodPost, "/devices", `{"device_id":"pixel-8","platform":"android"}`, &userID)

	require.NoError(t, h.RegisterDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		param      string
		ucErr      error
		callUC     bool
		wantStatus int
	}{
		{name: "own device", param: uuid.NewString(), callUC: true, wantStatus: http.StatusNoContent},
		{name: "another user's device", param: uuid.NewString(), callUC: true, ucErr: domainerrors.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "unknown device", param: uuid.NewString(), callUC: true, ucErr: domainerrors.ErrDeviceNotFound, wantStatus: http.StatusNotFound},
		{name: "malformed id", param: "phone", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deviceUC := createTestDeviceHandler(t)
			e := newTestEcho()
			if tt.callUC {
				deviceUC.EXPECT().DeactivateDevice(mock.Anything, userID, uuid.MustParse(tt.param)).Return(tt.ucErr)
			}

			c, rec := newJSONContext(e, http.MethodDelete, "/devices/"+tt.param, "", &userID)
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			require.NoError(t, h.DeactivateDevice(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeviceHandler_ListDevices_Unauthenticated(t *testing.T) {
	h, _ := createTestDeviceHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodGet, "/devices", "", nil)

	require.NoError(t, h.ListDevices(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

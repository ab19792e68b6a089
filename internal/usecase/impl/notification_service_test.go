package impl

import (
	"context"
	"fmt"
	"testing"

	"pharmacy/internal/domain/entity"
	"pharmacy/internal/domain/service"
	mockSvc "pharmacy/internal/mocks/service"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *repoMocks, *mockSvc.MockNotificationService) {
	repos := newRepoMocks(t)
	push := mockSvc.NewMockNotificationService(t)

	return NewNotificationService(repos.device, push, newDiscardLogger()), repos, push
}

func sampleOrderEvent(userID uuid.UUID, eventType entity.OrderEventType) *service.OrderEvent {
	return &service.OrderEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		OrderID:     uuid.NewString(),
		OrderNumber: "PH-20261016-K7Q2MX",
		UserID:      userID.String(),
		Status:      entity.OrderStatusShipped,
		FinalTotal:  "245.00",
		Amount:      "50.00",
		OccurredAt:  "2026-10-16T08:00:00Z",
	}
}

func devicesWithTokens(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, n)
	for i := range devices {
		devices[i] = &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true}
	}

	return devices
}

func TestNotificationService_HandleOrderEvent(t *testing.T) {
	svc, repos, push := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := sampleOrderEvent(userID, entity.OrderEventStatusChanged)

	repos.device.EXPECT().ListActiveDevices(ctx, userID).Return(devicesWithTokens(userID, 2), nil)
	push.EXPECT().
		SendMulticast(ctx, []string{"token-0", "token-1"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "Order update" &&
				msg.Body == "Order PH-20261016-K7Q2MX is now on its way." &&
				msg.Data["order_id"] == event.OrderID &&
				msg.Data["status"] == "shipped"
		})).
		Return(&service.MulticastResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-1"}}, nil)
	repos.device.EXPECT().DeactivateByTokens(ctx, []string{"token-1"}).Return(nil)

	result, err := svc.HandleOrderEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, &usecase.NotificationResult{Sent: 1, Failed: 1, InvalidTokens: 1}, result)
}

func TestNotificationService_HandleOrderEvent_RefundMessage(t *testing.T) {
	svc, repos, push := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := sampleOrderEvent(userID, entity.OrderEventRefunded)

	repos.device.EXPECT().ListActiveDevices(ctx, userID).Return(devicesWithTokens(userID, 1), nil)
	push.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "Refund issued" && msg.Data["amount"] == "50.00"
		})).
		Return(&service.MulticastResult{SuccessCount: 1}, nil)

	result, err := svc.HandleOrderEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestNotificationService_HandleOrderEvent_Batches(t *testing.T) {
	svc, repos, push := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := sampleOrderEvent(userID, entity.OrderEventCreated)
	total := service.MaxMulticastTokens + 20

	repos.device.EXPECT().ListActiveDevices(ctx, userID).Return(devicesWithTokens(userID, total), nil)
	push.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == service.MaxMulticastTokens }), mock.Anything).
		Return(&service.MulticastResult{SuccessCount: service.MaxMulticastTokens}, nil).
		Once()
	push.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 20 }), mock.Anything).
		Return(nil, assert.AnError).
		Once()

	// One batch got through, so the event is not redelivered.
	result, err := svc.HandleOrderEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, service.MaxMulticastTokens, result.Sent)
	assert.Equal(t, 20, result.Failed)
}

func TestNotificationService_HandleOrderEvent_NoDevices(t *testing.T) {
	svc, repos, _ := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	repos.device.EXPECT().ListActiveDevices(ctx, userID).Return(nil, nil)

	result, err := svc.HandleOrderEvent(ctx, sampleOrderEvent(userID, entity.OrderEventCreated))
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestNotificationService_HandleOrderEvent_Retryable(t *testing.T) {
	t.Run("device lookup fails", func(t *testing.T) {
		svc, repos, _ := createTestNotificationService(t)
		ctx := context.Background()
		userID := uuid.New()

		repos.device.EXPECT().ListActiveDevices(ctx, userID).Return(nil, assert.AnError)

		_, err := svc.HandleOrderEvent(ctx, sampleOrderEvent(userID, entity.OrderEventCreated))
		require.Error(t, err)
		assert.True(t, usecase.IsRetryableError(err))
	})

	t.Run("every batch fails", func(t *testing.T) {
		svc, repos, push := createTestNotificationService(t)
		ctx := context.Background()
		userID := uuid.New()

		repos.device.EXPECT().ListActiveDevices(ctx, userID).Return(devicesWithTokens(userID, 3), nil)
		push.EXPECT().SendMulticast(ctx, mock.Anything, mock.Anything).Return(nil, assert.AnError)

		result, err := svc.HandleOrderEvent(ctx, sampleOrderEvent(userID, entity.OrderEventCreated))
		require.Error(t, err)
		assert.True(t, usecase.IsRetryableError(err))
		assert.Equal(t, 3, result.Failed)
	})
}

func TestNotificationService_HandleOrderEvent_NotRetryable(t *testing.T) {
	svc, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	event := sampleOrderEvent(uuid.New(), "order.archived")
	_, err := svc.HandleOrderEvent(ctx, event)
	assert.True(t, errors.Is(err, ErrUnknownOrderEvent))
	assert.False(t, usecase.IsRetryableError(err))

	event = sampleOrderEvent(uuid.New(), entity.OrderEventCreated)
	event.UserID = "not-a-uuid"
	_, err = svc.HandleOrderEvent(ctx, event)
	require.Error(t, err)
	assert.False(t, usecase.IsRetryableError(err))
}

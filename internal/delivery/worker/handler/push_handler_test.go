package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmacy/config"
	"pharmacy/internal/domain/constants"
	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/infra/pubsub"
	mockUsecase "pharmacy/internal/mocks/usecase"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	events := NewEventHandler(EventHandlerParams{Logger: logger, NotificationUC: notificationUC})
	push := NewPushHandler(PushHandlerParams{
		Config:       &config.Config{},
		Logger:       logger,
		EventHandler: events,
	})

	return push, notificationUC
}

func newPushContext(t *testing.T, data string, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var msg pubsub.PushEnvelope
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/p/subscriptions/order-events-push"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func encodeEvent(t *testing.T, event *service.OrderEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func sampleEvent() *service.OrderEvent {
	return &service.OrderEvent{
		EventID:     "evt-1",
		Type:        entity.OrderEventStatusChanged,
		OrderID:     "5f0c5a4e-3a59-4a8e-9f0e-0d7b0c1a2b3c",
		OrderNumber: "PH-000042",
		UserID:      "7d1e0f52-8c1b-4c3a-bb1f-1d2e3f4a5b6c",
		Status:      entity.OrderStatusShipped,
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name       string
		ucResult   *usecase.NotificationResult
		ucErr      error
		wantStatus int
	}{
		{
			name:       "delivered",
			ucResult:   &usecase.NotificationResult{Sent: 2},
			wantStatus: http.StatusOK,
		},
		{
			name:       "retryable failure",
			ucErr:      usecase.NewRetryableError(errors.New("fcm unavailable")),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "permanent failure is acknowledged",
			ucErr:      errors.New("unknown event type"),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := createTestPushHandler(t)
			event := sampleEvent()

			notificationUC.EXPECT().
				HandleOrderEvent(mock.Anything, mock.MatchedBy(func(got *service.OrderEvent) bool {
					return got.EventID == event.EventID && got.Status == event.Status
				})).
				Return(tt.ucResult, tt.ucErr)

			c, rec := newPushContext(t, encodeEvent(t, event), nil)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_BadPayload(t *testing.T) {
	t.Run("data is not base64", func(t *testing.T) {
		h, _ := createTestPushHandler(t)
		c, rec := newPushContext(t, "%%%", nil)

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("data is not an order event", func(t *testing.T) {
		h, _ := createTestPushHandler(t)
		c, rec := newPushContext(t, base64.StdEncoding.EncodeToString([]byte("not json")), nil)

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestEventHandler_Handle_PropagatesRequestID(t *testing.T) {
	h, notificationUC := createTestPushHandler(t)
	event := sampleEvent()
	event.RequestID = "from-payload"

	notificationUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) (*usecase.NotificationResult, error) {
			assert.Equal(t, "from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))

			return &usecase.NotificationResult{}, nil
		})

	c, rec := newPushContext(t, encodeEvent(t, event), map[string]string{"request_id": "from-attributes"})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractRequestID(t *testing.T) {
	ctx := deliverycontext.WithRequestID(context.Background(), "from-context")

	assert.Equal(t, "from-payload", extractRequestID(ctx, nil, &service.OrderEvent{RequestID: "from-payload"}))
	assert.Equal(t, "from-context", extractRequestID(ctx, nil, &service.OrderEvent{}))
	assert.NotEmpty(t, extractRequestID(context.Background(), nil, &service.OrderEvent{}))
}

func TestPushHandler_Authenticate(t *testing.T) {
	const account = "push@pharmacy.iam.gserviceaccount.com"

	tests := []struct {
		name       string
		header     string
		payload    *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{
			name:       "missing token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token rejected",
			header:     "Bearer bad",
			validErr:   errors.New("signature"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong service account",
			header:     "Bearer ok",
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email": "other@example.com", "email_verified": true}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "signed by the push account",
			header:     "Bearer ok",
			payload:    &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email": account, "email_verified": true}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notificationUC := mockUsecase.NewMockNotificationUsecase(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			cfg := &config.Config{PubSub: &config.PubSubConfig{
				Provider:           constants.PubSubProviderGoogle,
				PushAudience:       "https://worker.pharmacy.example/push",
				PushServiceAccount: account,
			}}
			cfg.Env.Env = constants.EnvProduction

			h := NewPushHandler(PushHandlerParams{
				Config:       cfg,
				Logger:       logger,
				EventHandler: NewEventHandler(EventHandlerParams{Logger: logger, NotificationUC: notificationUC}),
			})
			h.validate = func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://worker.pharmacy.example/push", audience)

				return tt.payload, tt.validErr
			}
			if tt.wantStatus == http.StatusOK {
				notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(&usecase.NotificationResult{}, nil)
			}

			c, rec := newPushContext(t, encodeEvent(t, sampleEvent()), nil)
			if tt.header != "" {
				c.Request().Header.Set(echo.HeaderAuthorization, tt.header)
			}

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

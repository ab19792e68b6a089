package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacy/config"
	"pharmacy/internal/domain/constants"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.OrderEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        entity.OrderEventCreated,
		OrderID:     "order-1",
		OrderNumber: "PH-1",
		UserID:      "user-1",
	}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "order-1", received.Message.Attributes[AttrOrderID])
	assert.Equal(t, string(entity.OrderEventCreated), received.Message.Attributes[AttrEventType])

	raw, err := received.Payload()
	require.NoError(t, err)
	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "PH-1", decoded.OrderNumber)
	assert.Equal(t, "user-1", decoded.UserID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{Type: entity.OrderEventCreated})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{"not configured", nil, false},
		{"local", &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, false},
		{"local without endpoint", &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, true},
		{"google without project", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "order-events"}, true},
		{"google without topic", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "pharmacy"}, true},
		{"rabbitmq without url", &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ}, true},
		{"unknown", &config.PubSubConfig{Provider: "kafka"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestDiscardPublisher(t *testing.T) {
	p := &discardPublisher{logger: discardLogger()}

	assert.NoError(t, p.PublishOrderEvent(context.Background(), &service.OrderEvent{OrderID: "x"}))
	assert.NoError(t, p.Close())
}

func TestQueueName(t *testing.T) {
	assert.Equal(t, defaultOrderEventsQueue, QueueName(nil))
	assert.Equal(t, defaultOrderEventsQueue, QueueName(&config.RabbitMQConfig{}))
	assert.Equal(t, "custom", QueueName(&config.RabbitMQConfig{Queue: "custom"}))
}

func TestPushEnvelope_Payload(t *testing.T) {
	env, err := NewPushEnvelope(&service.OrderEvent{EventID: "evt-7", OrderID: "order-7", Type: entity.OrderEventCreated, RequestID: "req-7"}, "sub")
	require.NoError(t, err)

	assert.Equal(t, "evt-7", env.Message.MessageID)
	assert.Equal(t, "req-7", env.Message.Attributes[AttrRequestID])
	assert.NotEmpty(t, env.Message.PublishTime)

	raw, err := env.Payload()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"order-7"`)

	env.Message.Data = "%%%"
	_, err = env.Payload()
	assert.Error(t, err)
}

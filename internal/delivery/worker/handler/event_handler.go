package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// attrRequestID is the message attribute carrying the publisher's request id.
const attrRequestID = "request_id"

// EventHandlerParams holds dependencies for the EventHandler
type EventHandlerParams struct {
	fx.In

	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// EventHandler decodes order events and turns them into push notifications.
// Both the Pub/Sub push endpoint and the RabbitMQ consumer feed it.
type EventHandler struct {
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// NewEventHandler creates a new order event handler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// Handle processes one encoded order event. It reports whether a failure is worth redelivering.
func (h *EventHandler) Handle(ctx context.Context, body []byte, attributes map[string]string) (bool, error) {
	var event service.OrderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return false, errors.Wrap(err, "failed to parse order event")
	}

	// Extract request_id for distributed tracing
	requestID := extractRequestID(ctx, attributes, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)

	result, err := h.notificationUC.HandleOrderEvent(ctx, &event)
	if err != nil {
		return usecase.IsRetryableError(err), err
	}

	reqLogger.Info("[Worker] Order event processed",
		slog.String("event_id", event.EventID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return false, nil
}

// extractRequestID picks the request id from message attributes, the event, the context, or generates one
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.OrderEvent) string {
	// 1. Try message attributes
	if requestID := attributes[attrRequestID]; requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (set by the request scope middleware from X-Request-Id)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

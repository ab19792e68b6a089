package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUnknownOrderEvent is returned for events this service has no message for.
var ErrUnknownOrderEvent = errors.New("unknown order event type")

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// HandleOrderEvent pushes a notification about the order to every active device of its owner.
// Tokens the provider rejects are deactivated. The error is retryable only when no batch got through.
func (s *notificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.NotificationResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("eventID", event.EventID),
		slog.String("type", string(event.Type)),
		slog.String("orderID", event.OrderID),
	)

	msg, err := orderEventMessage(event)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user id in order event")
	}

	devices, err := s.deviceRepo.ListActiveDevices(ctx, userID)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to fetch devices"))
	}

	result := &usecase.NotificationResult{}
	if len(devices) == 0 {
		logger.Debug("No active devices for order owner")

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	var (
		invalidTokens []string
		sendErr       error
		failedBatches int
		batches       int
	)
	for start := 0; start < len(tokens); start += service.MaxMulticastTokens {
		batch := tokens[start:min(start+service.MaxMulticastTokens, len(tokens))]
		batches++

		res, err := s.notificationSvc.SendMulticast(ctx, batch, msg)
		if err != nil {
			logger.Warn("Multicast batch failed", slog.Int("size", len(batch)), slog.Any("error", err))
			result.Failed += len(batch)
			failedBatches++
			sendErr = err

			continue
		}

		result.Sent += res.SuccessCount
		result.Failed += res.FailureCount
		invalidTokens = append(invalidTokens, res.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		result.InvalidTokens = len(invalidTokens)
		if err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			logger.Warn("Failed to deactivate invalid tokens", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		}
	}

	if failedBatches == batches {
		return result, usecase.NewRetryableError(errors.Wrap(sendErr, "failed to send notifications"))
	}

	logger.Info("Order notification sent",
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalidTokens", result.InvalidTokens),
	)

	return result, nil
}

// orderEventMessage builds the push content for an order event.
func orderEventMessage(event *service.OrderEvent) (*service.PushMessage, error) {
	msg := &service.PushMessage{
		Data: map[string]string{
			"event_id":     event.EventID,
			"type":         string(event.Type),
			"order_id":     event.OrderID,
			"order_number": event.OrderNumber,
			"status":       string(event.Status),
		},
	}

	switch event.Type {
	case entity.OrderEventCreated:
		msg.Title = "Order received"
		msg.Body = fmt.Sprintf("We received order %s for %s.", event.OrderNumber, event.FinalTotal)
	case entity.OrderEventStatusChanged:
		msg.Title = "Order update"
		msg.Body = fmt.Sprintf("Order %s is now %s.", event.OrderNumber, orderStatusLabel(event.Status))
	case entity.OrderEventRefunded:
		msg.Title = "Refund issued"
		msg.Body = fmt.Sprintf("A refund of %s was issued for order %s.", event.Amount, event.OrderNumber)
		msg.Data["amount"] = event.Amount
	default:
		return nil, errors.Wrapf(ErrUnknownOrderEvent, "type %q", event.Type)
	}

	return msg, nil
}

func orderStatusLabel(status entity.OrderStatus) string {
	switch status {
	case entity.OrderStatusPaid:
		return "paid"
	case entity.OrderStatusProcessing:
		return "being prepared"
	case entity.OrderStatusShipped:
		return "on its way"
	case entity.OrderStatusDelivered:
		return "delivered"
	case entity.OrderStatusCancelled:
		return "cancelled"
	case entity.OrderStatusRefunded:
		return "refunded"
	default:
		return string(status)
	}
}

package pubsub

import (
	"context"
	"log/slog"

	"pharmacy/config"
	"pharmacy/internal/domain/constants"
	"pharmacy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discardPublisher is used when no transport is configured. Orders still go
// through; customers just receive no push notifications.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	p.logger.DebugContext(ctx, "order event dropped, no transport configured",
		slog.String("event_type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *discardPublisher) Close() error { return nil }

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the transport named by pubsub.provider and closes
// it when the app stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := openPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, errors.Wrap(err, "event publisher")
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("order events disabled")

		return &discardPublisher{logger: logger}, nil
	}

	logger = logger.With(slog.String("provider", cfg.Provider))

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required")
		}
		logger.Info("publishing order events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required")
		}
		logger.Info("publishing order events to Pub/Sub", slog.String("topic", cfg.TopicID))

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	case constants.PubSubProviderRabbitMQ:
		if cfg.RabbitMQ == nil || cfg.RabbitMQ.URL == "" {
			return nil, errors.New("pubsub.rabbitmq.url is required")
		}
		logger.Info("publishing order events to RabbitMQ", slog.String("queue", QueueName(cfg.RabbitMQ)))

		return NewRabbitMQPublisher(cfg.RabbitMQ, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)

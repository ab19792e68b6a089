package worker

import (
	"context"
	"log/slog"

	"pharmacy/config"
	"pharmacy/internal/delivery"
	"pharmacy/internal/delivery/worker/handler"
	"pharmacy/internal/domain/constants"
	"pharmacy/internal/infra/pubsub"

	"go.uber.org/fx"
)

const consumerTag = "pharmacy-worker"

type queueConsumer struct {
	cfg      *config.Config
	logger   *slog.Logger
	handler  *handler.EventHandler
	consumer *pubsub.RabbitMQConsumer
	stopped  context.Context
	cancel   context.CancelFunc
}

// ConsumerParams holds dependencies for the queue consumer
type ConsumerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	EventHandler *handler.EventHandler
}

// NewConsumer creates the RabbitMQ order events consumer. It stays idle unless RabbitMQ is the configured provider.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	c := &queueConsumer{
		cfg:     params.Cfg,
		logger:  params.Logger,
		handler: params.EventHandler,
	}

	pubsubCfg := params.Cfg.PubSub
	if pubsubCfg == nil || pubsubCfg.Provider != constants.PubSubProviderRabbitMQ || pubsubCfg.RabbitMQ == nil {
		return c, nil
	}

	consumer, err := pubsub.NewRabbitMQConsumer(pubsubCfg.RabbitMQ, params.Logger)
	if err != nil {
		return nil, err
	}
	c.consumer = consumer
	c.stopped, c.cancel = context.WithCancel(context.Background())

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

// Serve consumes order events until the worker stops
func (c *queueConsumer) Serve(ctx context.Context) error {
	if c.consumer == nil {
		c.logger.Info("RabbitMQ consumer disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	context.AfterFunc(c.stopped, cancel)

	c.logger.Info("Starting RabbitMQ consumer", slog.String("queue", pubsub.QueueName(c.cfg.PubSub.RabbitMQ)))

	return c.consumer.Run(ctx, consumerTag, c.handler.Handle)
}

func (c *queueConsumer) stop(ctx context.Context) error {
	c.logger.Info("Shutting down RabbitMQ consumer")
	c.cancel()

	return c.consumer.Close()
}

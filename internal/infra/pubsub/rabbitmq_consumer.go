package pubsub

import (
	"context"
	"log/slog"

	"pharmacy/config"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MessageHandler processes one message body. A retryable error requeues the message.
type MessageHandler func(ctx context.Context, body []byte, attributes map[string]string) (retryable bool, err error)

// RabbitMQConsumer reads order events from the durable queue.
type RabbitMQConsumer struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	logger *slog.Logger
}

// NewRabbitMQConsumer dials the broker and prepares the queue for consumption.
func NewRabbitMQConsumer(cfg *config.RabbitMQConfig, logger *slog.Logger) (*RabbitMQConsumer, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "open channel")
	}

	queue := QueueName(cfg)
	if err := declareTopology(ch, cfg.Exchange, queue); err != nil {
		ch.Close()
		conn.Close()

		return nil, err
	}

	if cfg.Prefetch > 0 {
		if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
			ch.Close()
			conn.Close()

			return nil, errors.Wrap(err, "set prefetch")
		}
	}

	return &RabbitMQConsumer{conn: conn, ch: ch, queue: queue, logger: logger}, nil
}

// Run consumes until ctx is cancelled or the delivery channel closes.
func (c *RabbitMQConsumer) Run(ctx context.Context, consumerTag string, handle MessageHandler) error {
	msgs, err := c.ch.Consume(c.queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "consume")
	}

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Stopping order events consumer", slog.String("queue", c.queue))

			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("rabbitmq delivery channel closed")
			}
			c.dispatch(ctx, msg, handle)
		}
	}
}

func (c *RabbitMQConsumer) dispatch(ctx context.Context, msg amqp.Delivery, handle MessageHandler) {
	attributes := make(map[string]string, len(msg.Headers))
	for k, v := range msg.Headers {
		if s, ok := v.(string); ok {
			attributes[k] = s
		}
	}

	retryable, err := handle(ctx, msg.Body, attributes)
	if err == nil {
		if ackErr := msg.Ack(false); ackErr != nil {
			c.logger.Error("Failed to ack message", slog.Any("error", ackErr))
		}

		return
	}

	c.logger.Error("Failed to handle order event",
		slog.String("message_id", msg.MessageId),
		slog.Bool("retryable", retryable),
		slog.Any("error", err),
	)
	// Redelivered messages are dropped on a second failure to avoid a poison loop.
	requeue := retryable && !msg.Redelivered
	if nackErr := msg.Nack(false, requeue); nackErr != nil {
		c.logger.Error("Failed to nack message", slog.Any("error", nackErr))
	}
}

// Close closes the channel and the connection.
func (c *RabbitMQConsumer) Close() error {
	chErr := c.ch.Close()
	connErr := c.conn.Close()
	if chErr != nil {
		return errors.WithStack(chErr)
	}

	return errors.WithStack(connErr)
}

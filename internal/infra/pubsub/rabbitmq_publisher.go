package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"pharmacy/config"
	"pharmacy/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultOrderEventsQueue = "order.events"
	rabbitPublishTimeout    = 3 * time.Second
)

// rabbitMQPublisher implements EventPublisher on a durable RabbitMQ queue.
type rabbitMQPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	queue    string
	logger   *slog.Logger
	mu       sync.Mutex // amqp channels are not safe for concurrent publishing
}

// NewRabbitMQPublisher dials the broker and declares the events queue.
func NewRabbitMQPublisher(cfg *config.RabbitMQConfig, logger *slog.Logger) (service.EventPublisher, error) {
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

	return &rabbitMQPublisher{
		conn:     conn,
		ch:       ch,
		exchange: cfg.Exchange,
		queue:    queue,
		logger:   logger,
	}, nil
}

// QueueName returns the configured queue or the default one.
func QueueName(cfg *config.RabbitMQConfig) string {
	if cfg == nil || cfg.Queue == "" {
		return defaultOrderEventsQueue
	}

	return cfg.Queue
}

// declareTopology declares the durable queue and, when an exchange is configured,
// a topic exchange bound to it on the order.* routing keys.
func declareTopology(ch *amqp.Channel, exchange, queue string) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare queue %s", queue)
	}
	if exchange == "" {
		return nil
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare exchange %s", exchange)
	}
	if err := ch.QueueBind(queue, "order.#", exchange, false, nil); err != nil {
		return errors.Wrapf(err, "bind queue %s", queue)
	}

	return nil
}

// PublishOrderEvent publishes the event as a persistent JSON message.
func (p *rabbitMQPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	routingKey := p.queue
	if p.exchange != "" {
		routingKey = string(event.Type)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	pubCtx, cancel := context.WithTimeout(ctx, rabbitPublishTimeout)
	defer cancel()

	p.mu.Lock()
	err = p.ch.PublishWithContext(pubCtx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    time.Now().UTC(),
		Headers:      headers,
		Body:         body,
	})
	p.mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "publish order event")
	}

	p.logger.Info("[RabbitMQ] Event published successfully",
		slog.String("event_type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

// Close closes the channel and the connection.
func (p *rabbitMQPublisher) Close() error {
	chErr := p.ch.Close()
	connErr := p.conn.Close()
	if chErr != nil {
		return errors.WithStack(chErr)
	}

	return errors.WithStack(connErr)
}

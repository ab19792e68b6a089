package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"pharmacy/internal/domain/service"

	"github.com/pkg/errors"
)

// PushEnvelope is the body of a Pub/Sub push request. The local publisher
// sends the same shape, so the worker has a single entry point for events.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription    string `json:"subscription"`
	DeliveryAttempt int    `json:"deliveryAttempt,omitempty"`
}

// NewPushEnvelope wraps an order event the way Pub/Sub would deliver it.
func NewPushEnvelope(event *service.OrderEvent, subscription string) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal order event")
	}

	env := &PushEnvelope{Subscription: subscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = eventAttributes(event)
	env.Message.MessageID = event.EventID
	env.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	return env, nil
}

// Payload returns the decoded message data.
func (e *PushEnvelope) Payload() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	return data, nil
}

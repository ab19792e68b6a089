// Package pubsub publishes order events to the configured message transport.
package pubsub

import "pharmacy/internal/domain/service"

// Message attribute keys shared by every transport.
const (
	AttrEventType = "event_type"
	AttrOrderID   = "order_id"
	AttrRequestID = "request_id"
)

func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		AttrEventType: string(event.Type),
		AttrOrderID:   event.OrderID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}

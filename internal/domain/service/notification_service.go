package service

import (
	"context"
)

// MaxMulticastTokens is the largest token batch a single multicast may carry.
const MaxMulticastTokens = 500

// PushMessage is the content of a push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// MulticastResult summarises a batch send.
type MulticastResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as unregistered or malformed.
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendMulticast sends the message to up to MaxMulticastTokens device tokens.
	SendMulticast(ctx context.Context, tokens []string, msg *PushMessage) (*MulticastResult, error)
}

package usecase

import (
	"context"
	"fmt"

	"pharmacy/internal/domain/service"

	"github.com/pkg/errors"
)

// NotificationResult summarises the push deliveries made for one event.
type NotificationResult struct {
	Sent          int
	Failed        int
	InvalidTokens int
}

// NotificationUsecase turns order events into push notifications for the order's owner.
type NotificationUsecase interface {
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*NotificationResult, error)
}

// retryableError wraps an error to indicate the message should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

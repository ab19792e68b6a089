package repository

import (
	"context"
	"time"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOTPNotFound is returned when no code was issued to the phone number.
var ErrOTPNotFound = errors.New("otp code not found")

// OTPRepository stores issued one-time login codes.
type OTPRepository interface {
	// Create persists a newly issued code.
	Create(ctx context.Context, code *entity.OTPCode) error

	// FindLatestByPhone returns the most recently issued code for the phone number.
	FindLatestByPhone(ctx context.Context, phone string) (*entity.OTPCode, error)

	// IncrementAttempts records a failed verification attempt.
	IncrementAttempts(ctx context.Context, id uuid.UUID) error

	// MarkConsumed marks the code as used.
	MarkConsumed(ctx context.Context, id uuid.UUID, at time.Time) error

	// DeleteByPhone removes every code issued to the phone number.
	DeleteByPhone(ctx context.Context, phone string) error
}

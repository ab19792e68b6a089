// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"pharmacy/internal/domain/entity"
)

// --- Input DTOs ---

// RequestOTPInput defines the data required to request a login code.
type RequestOTPInput struct {
	Phone string
}

// VerifyOTPInput defines the data required to log in with a code.
type VerifyOTPInput struct {
	Phone         string
	Code          string
	CartSessionID string // Anonymous cart to merge into the user's cart, optional.
}

// RefreshTokenInput defines the data required to rotate a refresh token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RequestOTPOutput tells the client how long the code stays valid.
type RequestOTPOutput struct {
	ExpiresIn   time.Duration
	ResendAfter time.Duration
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	Tokens    *entity.TokenPair
	User      *entity.User
	IsNewUser bool
}

// UserUsecase defines the interface for phone login and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RequestOTP(ctx context.Context, input *RequestOTPInput) (*RequestOTPOutput, error)
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*entity.TokenPair, error)
	Logout(ctx context.Context, input *LogoutInput) error
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPCode is a one-time login code issued to a phone number.
type OTPCode struct {
	ID         uuid.UUID  // The unique ID for this code.
	Phone      string     // Phone number the code was sent to.
	CodeHash   string     // bcrypt hash of the numeric code.
	Attempts   int        // Number of failed verification attempts so far.
	ExpiresAt  time.Time  // The code is rejected after this instant.
	ConsumedAt *time.Time // Set once the code has been used successfully.
	CreatedAt  time.Time
}

// IsExpired reports whether the code is past its expiry at the given time.
func (o *OTPCode) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// IsConsumed reports whether the code was already used.
func (o *OTPCode) IsConsumed() bool {
	return o.ConsumedAt != nil
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// TokenPair is the credential bundle returned after a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // Access token lifetime in seconds.
}

package repository

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token has expired")
)

// RefreshTokenRepository stores sign-in sessions. Only the hash of a refresh
// token is ever persisted; a session ends when its row is deleted.
type RefreshTokenRepository interface {
	CreateSession(ctx context.Context, token *entity.RefreshToken) error

	// FindSessionByHash returns ErrRefreshTokenExpired for a known but stale session.
	FindSessionByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// ListActiveSessions returns unexpired sessions, newest first.
	ListActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	DeleteSession(ctx context.Context, id uuid.UUID) error
	DeleteSessionByHash(ctx context.Context, tokenHash string) error

	// RevokeUserSessions signs the user out everywhere.
	RevokeUserSessions(ctx context.Context, userID uuid.UUID) error
}

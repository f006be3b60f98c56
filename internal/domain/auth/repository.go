package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository persists issued refresh tokens by hash so they can be revoked.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64) error
	IsRefreshTokenRevoked(ctx context.Context, token string) (userID string, revoked bool, err error)
	RevokeRefreshToken(ctx context.Context, token string) error
	// DeleteExpiredRefreshTokens removes rows that expired before the given instant
	// and returns how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error)
}

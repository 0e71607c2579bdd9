package auth

import (
	"context"
	"time"
)

// TokenRepository persists refresh tokens so logout and rotation can
// revoke them across instances.
type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, userID, token string, expiresAt time.Time) error
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
	RevokeRefreshToken(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

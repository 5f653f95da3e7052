package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenManager generates and validates signed session tokens.
type TokenManager interface {
	GenerateToken(userID uuid.UUID) (string, error)
	ParseToken(token string) (uuid.UUID, error)
}

// TokenStore persists the session tokens issued to each user.
type TokenStore interface {
	Create(ctx context.Context, token UserToken) error
	PruneByUser(ctx context.Context, userID uuid.UUID, keep int) error
}

// UserToken is one issued session token of a user.
type UserToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	CreatedAt time.Time
}

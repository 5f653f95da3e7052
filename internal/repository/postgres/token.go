package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/carlisting-server/internal/model"
)

var _ model.TokenStore = (*TokenRepository)(nil)

type TokenRepository struct {
	db *Connection
}

func NewTokenRepository(db *Connection) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, token model.UserToken) error {
	const query = `
        INSERT INTO user_tokens (id, user_id, token, created_at)
        VALUES ($1, $2, $3, $4)
    `

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	if _, err := r.db.Exec(ctx, query, token.ID, token.UserID, token.Token, token.CreatedAt); err != nil {
		return fmt.Errorf("failed to create user token: %w", err)
	}
	return nil
}

// PruneByUser keeps only the newest keep tokens of the user.
func (r *TokenRepository) PruneByUser(ctx context.Context, userID uuid.UUID, keep int) error {
	const query = `
        DELETE FROM user_tokens
        WHERE user_id = $1 AND id NOT IN (
            SELECT id FROM user_tokens WHERE user_id = $1
            ORDER BY created_at DESC, id DESC
            LIMIT $2
        )
    `
	if _, err := r.db.Exec(ctx, query, userID, keep); err != nil {
		return fmt.Errorf("failed to prune user tokens: %w", err)
	}
	return nil
}

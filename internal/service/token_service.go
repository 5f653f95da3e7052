package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/carlisting-server/internal/logger"
	"github.com/dtroode/carlisting-server/internal/model"
)

// TokenService issues session tokens and resolves them back to users. It
// composes the TokenManager, the TokenStore and the UserStore.
type TokenService struct {
	manager    model.TokenManager
	store      model.TokenStore
	users      model.UserStore
	maxPerUser int
	logger     *logger.Logger
	now        func() time.Time
}

// NewTokenService creates a TokenService. A positive maxPerUser keeps only
// that many newest tokens per user; zero keeps them all.
func NewTokenService(
	manager model.TokenManager,
	store model.TokenStore,
	users model.UserStore,
	maxPerUser int,
	logger *logger.Logger,
) *TokenService {
	return &TokenService{
		manager:    manager,
		store:      store,
		users:      users,
		maxPerUser: maxPerUser,
		logger:     logger,
		now:        time.Now,
	}
}

// Issue signs a token for the user and appends it to the user's token list.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.manager.GenerateToken(userID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	record := model.UserToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		CreatedAt: s.now(),
	}
	if err := s.store.Create(ctx, record); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}

	if s.maxPerUser > 0 {
		if err := s.store.PruneByUser(ctx, userID, s.maxPerUser); err != nil {
			s.logger.Warn("Token service: failed to prune user tokens",
				"user_id", userID,
				"error", err.Error())
		}
	}

	return token, nil
}

// Authenticate verifies the token and loads the user it names. A bad
// signature and a user that no longer exists both yield
// model.ErrInvalidToken.
func (s *TokenService) Authenticate(ctx context.Context, token string) (model.User, error) {
	userID, err := s.manager.ParseToken(token)
	if err != nil {
		return model.User{}, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("%w: user %s does not exist", model.ErrInvalidToken, userID)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

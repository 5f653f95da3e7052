package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/carlisting-server/internal/apierror"
	"github.com/dtroode/carlisting-server/internal/logger"
	"github.com/dtroode/carlisting-server/internal/model"
)

const dummyPassword = "carlisting-dummy-password"

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	limiter      model.LoginLimiter
	tokenService *TokenService
	logger       *logger.Logger
	now          func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	limiter model.LoginLimiter,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		limiter:      limiter,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

// Signup registers a user and issues the first session token.
func (a *Auth) Signup(ctx context.Context, params model.SignupParams) (model.Session, error) {
	email := model.NormalizeEmail(params.Email)

	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.Session{}, apierror.NewErrEmailIsTaken(email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.Session{}, apierror.NewErrEmailIsTaken(email)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"user_id", user.ID)

	return model.Session{User: user, Token: token}, nil
}

// Login checks the credentials and issues a new session token.
func (a *Auth) Login(ctx context.Context, params model.LoginParams) (model.Session, error) {
	if params.Email == "" || params.Password == "" {
		return model.Session{}, apierror.NewErrCredentialsMissing()
	}
	email := model.NormalizeEmail(params.Email)

	if err := a.limiter.Enforce(ctx, email, params.ClientIP); err != nil {
		if errors.Is(err, model.ErrRateLimited) {
			a.logger.Info("Auth service: login throttled",
				"email", email,
				"client_ip", params.ClientIP)
			return model.Session{}, apierror.NewErrTooManyLoginAttempts()
		}
		a.logger.Warn("Auth service: login limiter failed",
			"error", err.Error())
	}

	user, err := a.FindByCredentials(ctx, email, params.Password)
	if err != nil {
		var apiErr *apierror.APIError
		if errors.As(err, &apiErr) {
			if ferr := a.limiter.RecordFailure(ctx, params.ClientIP); ferr != nil {
				a.logger.Warn("Auth service: failed to record login failure",
					"client_ip", params.ClientIP,
					"error", ferr.Error())
			}
		}
		return model.Session{}, err
	}

	if err := a.limiter.Reset(ctx, email); err != nil {
		a.logger.Warn("Auth service: failed to reset login attempts",
			"email", email,
			"error", err.Error())
	}

	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"user_id", user.ID)

	return model.Session{User: user, Token: token}, nil
}

// FindByCredentials returns the user owning email if password matches. An
// unknown email and a wrong password fail with the same error.
func (a *Auth) FindByCredentials(ctx context.Context, email, password string) (model.User, error) {
	email = model.NormalizeEmail(email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		// Spend the same hashing work as for a real account.
		if hash := a.dummy(); hash != "" {
			_, _ = a.hasher.Verify(password, hash)
		}
		return model.User{}, apierror.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		a.logger.Error("Auth service: stored password hash is unreadable",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, apierror.NewErrInvalidCredentials()
	}
	if !ok {
		return model.User{}, apierror.NewErrInvalidCredentials()
	}

	return user, nil
}

func (a *Auth) dummy() string {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Warn("Auth service: failed to prepare dummy hash",
				"error", err.Error())
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}

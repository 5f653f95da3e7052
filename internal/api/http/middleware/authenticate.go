package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/carlisting-server/internal/apierror"
	"github.com/dtroode/carlisting-server/internal/logger"
	"github.com/dtroode/carlisting-server/internal/model"
)

const bearerPrefix = "Bearer "

// TokenService resolves bearer tokens to users.
type TokenService interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the user into the request
// context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects the request with 401 when the Authorization header is absent
// and with 403 when the token does not resolve to an existing user. The
// "Bearer " prefix is optional.
func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return apierror.NewErrMissingAuthorizationToken()
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			return apierror.NewErrInvalidAuthorizationToken()
		}

		ctx := c.Request().Context()
		user, err := m.tokenService.Authenticate(ctx, token)
		if err != nil {
			if !errors.Is(err, model.ErrInvalidToken) {
				m.logger.Error("Authenticate middleware: failed to resolve token",
					"path", c.Path(),
					"error", err.Error())
			}
			return apierror.NewErrInvalidAuthorizationToken()
		}

		c.SetRequest(c.Request().WithContext(m.contextManager.SetUserToContext(ctx, user)))
		return next(c)
	}
}

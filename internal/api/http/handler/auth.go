package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/carlisting-server/internal/apierror"
	"github.com/dtroode/carlisting-server/internal/logger"
	"github.com/dtroode/carlisting-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Signup(ctx context.Context, params model.SignupParams) (model.Session, error)
	Login(ctx context.Context, params model.LoginParams) (model.Session, error)
}

// Auth handles the public user endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles POST /user/signup.
func (h *Auth) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return apierror.NewErrValidation("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.authService.Signup(c.Request().Context(), model.SignupParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	h.logger.Debug("Auth handler: signup completed",
		"user_id", session.User.ID)

	return c.JSON(http.StatusCreated, newSessionResponse(session))
}

// Login handles POST /user/login.
func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apierror.NewErrValidation("malformed request body")
	}

	session, err := h.authService.Login(c.Request().Context(), model.LoginParams{
		Email:    req.Email,
		Password: req.Password,
		ClientIP: c.RealIP(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newSessionResponse(session))
}

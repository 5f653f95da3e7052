package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/carlisting-server/internal/logger"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	db     Pinger
	logger *logger.Logger
}

func NewHealth(db Pinger, logger *logger.Logger) *Health {
	return &Health{db: db, logger: logger}
}

// Get handles GET /health.
func (h *Health) Get(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		h.logger.Warn("Health handler: database ping failed", "error", err.Error())
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/carlisting-server/internal/logger"
)

// Logging logs every HTTP request with its outcome.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle renders handler errors through the echo error handler first, so the
// logged status is the one sent to the client.
func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		status := c.Response().Status
		args := []any{
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_ip", c.RealIP(),
		}
		switch {
		case err != nil && status >= 500:
			l.logger.Error("HTTP request failed", append(args, "error", err.Error())...)
		case err != nil:
			l.logger.Info("HTTP request rejected", append(args, "error", err.Error())...)
		default:
			l.logger.Info("HTTP request completed", args...)
		}

		return nil
	}
}

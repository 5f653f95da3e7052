package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// Timeout puts a deadline on the request context. Downstream calls that honor
// the context give up once it passes. A non-positive d disables it.
func Timeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if d <= 0 {
			return next
		}
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

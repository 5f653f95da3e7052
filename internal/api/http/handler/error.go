package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/carlisting-server/internal/apierror"
	"github.com/dtroode/carlisting-server/internal/logger"
	"github.com/dtroode/carlisting-server/internal/model"
)

const internalErrorMessage = "internal server error"

// NewErrorHandler returns the echo error handler that turns every error
// returned by handlers and middleware into a JSON body.
func NewErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := handleError(err)
		if code >= http.StatusInternalServerError {
			logger.Error("HTTP handler: request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err.Error())
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, errorResponse{Error: message})
		}
		if err != nil {
			logger.Error("HTTP handler: failed to write error response", "error", err.Error())
		}
	}
}

func handleError(err error) (int, string) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPCode, apiErr.Message
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	switch {
	case errors.Is(err, model.ErrInvalidUpdate):
		return http.StatusBadRequest, apierror.NewErrInvalidUpdates().Message
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "request timed out"
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// Package apierror holds errors that carry their client-facing HTTP status.
package apierror

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// APIError is an error safe to show to the client as is.
type APIError struct {
	HTTPCode int
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

// New creates an APIError with the given status and message.
func New(code int, message string) *APIError {
	return &APIError{HTTPCode: code, Message: message}
}

func NewErrMissingAuthorizationToken() *APIError {
	return New(http.StatusUnauthorized, "Access Denied: No Token Provided")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return New(http.StatusForbidden, "Invalid Token. Please Authenticate.")
}

func NewErrUnauthenticated() *APIError {
	return New(http.StatusUnauthorized, "authentication required")
}

func NewErrEmailIsTaken(email string) *APIError {
	return New(http.StatusBadRequest, fmt.Sprintf("email %s is already taken", email))
}

// NewErrInvalidCredentials is shared by unknown email and wrong password.
func NewErrInvalidCredentials() *APIError {
	return New(http.StatusBadRequest, "Unable to login")
}

func NewErrCredentialsMissing() *APIError {
	return New(http.StatusPaymentRequired, "Email or password missing.")
}

func NewErrTooManyLoginAttempts() *APIError {
	return New(http.StatusTooManyRequests, "too many login attempts, try again later")
}

func NewErrInvalidUpdates() *APIError {
	return New(http.StatusBadRequest, "Invalid updates!")
}

func NewErrValidation(message string) *APIError {
	return New(http.StatusBadRequest, message)
}

func NewErrInvalidImage(filename string) *APIError {
	return New(http.StatusBadRequest, fmt.Sprintf("Only image files are allowed! (%s)", filename))
}

func NewErrCarNotFound(id uuid.UUID) *APIError {
	return New(http.StatusNotFound, fmt.Sprintf("car %s not found", id))
}

func NewErrImageNotFound(key string) *APIError {
	return New(http.StatusNotFound, fmt.Sprintf("image %s not found", key))
}

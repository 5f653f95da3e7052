package model

import "errors"

var (
	// ErrNotFound is returned by stores when nothing matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores on a unique constraint violation.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidUpdate means an update payload named a field outside the allow-list.
	ErrInvalidUpdate = errors.New("invalid updates")
	// ErrValidation marks malformed or incomplete input.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidToken is returned when a session token cannot be verified.
	ErrInvalidToken = errors.New("invalid token")
	// ErrRateLimited is returned when too many login attempts were made.
	ErrRateLimited = errors.New("too many attempts")
)

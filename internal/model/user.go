package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// PasswordHasher hashes passwords and verifies them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// LoginLimiter throttles login attempts per email and failed attempts per
// client address.
type LoginLimiter interface {
	Enforce(ctx context.Context, email, clientIP string) error
	RecordFailure(ctx context.Context, clientIP string) error
	Reset(ctx context.Context, email string) error
}

// User represents a stored account. PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignupParams contains parameters to register a user.
type SignupParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams contains submitted credentials.
type LoginParams struct {
	Email    string
	Password string
	ClientIP string
}

// Session is a user together with a freshly issued token.
type Session struct {
	User  User
	Token string
}

// NormalizeEmail returns the canonical form used for uniqueness and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package context

import (
	"context"

	"github.com/dtroode/carlisting-server/internal/model"
)

type userKey struct{}

// Manager stores the authenticated user in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx carrying user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the user attached by SetUserToContext.
//
// Returns the user and a boolean indicating if a user was found.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	return user, ok
}

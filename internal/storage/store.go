// Package storage provides abstractions for session storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/models"
)

// ErrSessionNotFound is returned for unknown and expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore defines the interface for form session storage.
// This abstraction keeps the service layer independent of where sessions live.
type SessionStore interface {
	// CreateSession stores a new session.
	// Missing ID and timestamps are filled in by the store.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by its ID.
	// Returns ErrSessionNotFound if it does not exist or has expired.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// ModifySession applies fn to the session's form and stores the result,
	// refreshing UpdatedAt. No other write to the session can interleave
	// with the call, so fn must not block or call back into the store.
	// Returns the updated session, or ErrSessionNotFound if it does not exist
	// or has expired.
	ModifySession(ctx context.Context, sessionID string, fn func(form.State) form.State) (*models.Session, error)

	// DeleteSession removes a session.
	// Returns ErrSessionNotFound if it does not exist.
	DeleteSession(ctx context.Context, sessionID string) error

	// Count returns the number of live sessions.
	Count(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}

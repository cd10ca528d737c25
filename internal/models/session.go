package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tipsplit/internal/form"
)

// Session represents one client's tip form held by the server.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// Form is the current form state.
	Form form.State

	// CreatedAt is the Unix timestamp when the session was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last change to Form.
	UpdatedAt int64
}

// NewSession creates a session with a fresh ID around the given form.
func NewSession(f form.State) *Session {
	now := time.Now().Unix()
	return &Session{
		ID:        uuid.New().String(),
		Form:      f,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingAPIKey = errors.New("api key required")
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// APIKeyVerifier checks API keys against a bcrypt hash.
// The zero value, or one built from an empty hash, accepts every request.
type APIKeyVerifier struct {
	hash []byte
}

// NewAPIKeyVerifier creates a verifier for the given bcrypt hash.
// An empty hash disables the check.
func NewAPIKeyVerifier(hash string) (*APIKeyVerifier, error) {
	if hash == "" {
		return &APIKeyVerifier{}, nil
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid api key hash: %w", err)
	}
	return &APIKeyVerifier{hash: []byte(hash)}, nil
}

// Enabled reports whether keys are checked at all.
func (v *APIKeyVerifier) Enabled() bool {
	return v != nil && len(v.hash) > 0
}

// Verify returns nil if key matches the configured hash.
func (v *APIKeyVerifier) Verify(key string) error {
	if !v.Enabled() {
		return nil
	}
	if key == "" {
		return ErrMissingAPIKey
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(key)); err != nil {
		return ErrInvalidAPIKey
	}
	return nil
}

// HashAPIKey hashes a key for use in configuration.
func HashAPIKey(key string, cost int) (string, error) {
	if key == "" {
		return "", ErrMissingAPIKey
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash api key: %w", err)
	}
	return string(hashed), nil
}

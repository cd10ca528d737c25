package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("session-123")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.SessionID != "session-123" {
		t.Errorf("SessionID = %q, want %q", claims.SessionID, "session-123")
	}
	if claims.Subject != "session-123" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "session-123")
	}
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)
	expired := NewJWTManager("test-secret", -time.Minute)

	foreign, err := other.Generate("session-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	stale, err := expired.Generate("session-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{SessionID: "session-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: foreign},
		{name: "expired", token: stale},
		{name: "unsigned", token: noneAlg},
		{name: "garbage", token: "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Validate(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestJWTManager_Clock(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	m := NewJWTManager("test-secret", 10*time.Minute, WithClock(func() time.Time { return now }))

	token, err := m.Generate("session-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	now = now.Add(9 * time.Minute)
	if _, err := m.Validate(token); err != nil {
		t.Errorf("Validate before expiry failed: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate after expiry: got %v, want ErrInvalidToken", err)
	}
}

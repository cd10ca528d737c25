package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tipsplit/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// SessionIDKey is the context key for the session ID taken from the token.
const SessionIDKey contextKey = "session_id"

// APIKeyHeader carries the API key when one is configured.
const APIKeyHeader = "X-API-Key"

// GetSessionID extracts the session ID from the context.
// Returns empty string if not found.
func GetSessionID(ctx context.Context) string {
	sessionID, _ := ctx.Value(SessionIDKey).(string)
	return sessionID
}

// WithSessionID returns a context carrying sessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// RequireSession returns an interceptor that validates session tokens.
// It extracts the token from the Authorization header, validates it, and adds
// the session ID to the request context. Procedures listed in public skip the check.
func RequireSession(jwtManager *auth.JWTManager, public ...string) connect.UnaryInterceptorFunc {
	skip := make(map[string]bool, len(public))
	for _, p := range public {
		skip[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if skip[req.Spec().Procedure] {
				return next(ctx, req)
			}

			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			// Parse Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			noteSessionID(ctx, claims.SessionID)
			return next(WithSessionID(ctx, claims.SessionID), req)
		}
	}
}

// RequireAPIKey returns an interceptor that checks the X-API-Key header.
// It does nothing when the verifier is disabled.
func RequireAPIKey(verifier *auth.APIKeyVerifier) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		if !verifier.Enabled() {
			return next
		}
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if err := verifier.Verify(req.Header().Get(APIKeyHeader)); err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			return next(ctx, req)
		}
	}
}

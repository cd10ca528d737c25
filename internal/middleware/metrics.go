package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tipsplit/internal/auth"
	"github.com/mmynk/tipsplit/internal/metrics"
)

// MetricsInterceptor records call counts and latency for every RPC.
// Install it outermost so rejected calls are counted too.
func MetricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.RPCRequests.WithLabelValues(procedure, code).Inc()
			m.RPCDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())

			return resp, err
		}
	}
}

// Interceptors returns the standard interceptor chain, outermost first.
func Interceptors(m *metrics.Metrics, verifier *auth.APIKeyVerifier, jwtManager *auth.JWTManager, public ...string) connect.Option {
	return connect.WithInterceptors(
		MetricsInterceptor(m),
		LoggingInterceptor(),
		RequireAPIKey(verifier),
		RequireSession(jwtManager, public...),
	)
}

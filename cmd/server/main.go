package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tipsplit/internal/auth"
	"github.com/mmynk/tipsplit/internal/config"
	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/middleware"
	"github.com/mmynk/tipsplit/internal/service"
	"github.com/mmynk/tipsplit/internal/storage/memory"
	"github.com/mmynk/tipsplit/pkg/api/apiconnect"
	"github.com/mmynk/tipsplit/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Default logging until the config tells us the level
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
	if cfg.EphemeralSecret {
		slog.Warn("JWT_SECRET not set; using a random secret, sessions will not survive a restart")
	}

	verifier, err := auth.NewAPIKeyVerifier(cfg.APIKeyHash)
	if err != nil {
		slog.Error("Failed to load API key hash", "error", err)
		os.Exit(1)
	}

	store := memory.New(cfg.SessionTTL)
	defer store.Close()
	slog.Info("Session store initialized", "ttl", cfg.SessionTTL)

	m := metrics.New()
	m.WatchSessions(store)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)
	svc := service.NewTipService(store, jwtManager,
		service.WithMetrics(m),
		service.WithSliderSteps(cfg.SliderSteps),
	)

	mux := http.NewServeMux()

	// Register Connect services
	tipPath, tipHandler := apiconnect.NewTipServiceHandler(svc,
		middleware.Interceptors(m, verifier, jwtManager, apiconnect.PublicProcedures...),
	)
	mux.Handle(tipPath, tipHandler)
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(loggedHandler, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting",
			"address", server.Addr,
			"api_key_required", verifier.Enabled(),
			"slider_steps", cfg.SliderSteps,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{FileEnv, "PORT", "LOG_LEVEL", "JWT_SECRET", "SESSION_TTL", "SLIDER_STEPS", "API_KEY_HASH"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 6, cfg.SliderSteps)
	assert.True(t, cfg.EphemeralSecret)
	assert.Len(t, cfg.JWTSecret, 64)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "tipsplit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9090
log_level: debug
jwt_secret: from-file
session_ttl: 10m
slider_steps: 0
`), 0o600))
	t.Setenv(FileEnv, path)
	t.Setenv("SESSION_TTL", "45m")

	cfg, err := Load(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.False(t, cfg.EphemeralSecret)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 0, cfg.SliderSteps)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("PORT")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("JWT_SECRET=from-dotenv\nPORT=7070\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.JWTSecret)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad port", key: "PORT", val: "eighty"},
		{name: "port out of range", key: "PORT", val: "70000"},
		{name: "bad ttl", key: "SESSION_TTL", val: "soon"},
		{name: "zero ttl", key: "SESSION_TTL", val: "0s"},
		{name: "negative steps", key: "SLIDER_STEPS", val: "-1"},
		{name: "unknown level", key: "LOG_LEVEL", val: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not, a, number]"), 0o600))
	t.Setenv(FileEnv, path)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

// Package config loads server settings from defaults, an optional YAML file,
// an optional .env file and the environment, in increasing precedence.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/tipsplit/internal/form"
)

// FileEnv names the environment variable pointing at a YAML config file.
const FileEnv = "TIPSPLIT_CONFIG"

// Config holds the server settings.
type Config struct {
	Port        int           `yaml:"port"`
	LogLevel    string        `yaml:"log_level"`
	JWTSecret   string        `yaml:"jwt_secret"`
	SessionTTL  time.Duration `yaml:"session_ttl"`
	SliderSteps int           `yaml:"slider_steps"`
	APIKeyHash  string        `yaml:"api_key_hash"`

	// EphemeralSecret is set when no JWT secret was configured and a random
	// one was generated. Tokens then stop working after a restart.
	EphemeralSecret bool `yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Port:        8080,
		LogLevel:    "info",
		SessionTTL:  30 * time.Minute,
		SliderSteps: form.DefaultSliderSteps,
	}
}

// Load builds a Config. envFiles are passed to godotenv; with none it reads
// ./.env. Missing .env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := Default()
	if path := os.Getenv(FileEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		c.SessionTTL = ttl
	}
	if v := os.Getenv("SLIDER_STEPS"); v != "" {
		steps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SLIDER_STEPS %q: %w", v, err)
		}
		c.SliderSteps = steps
	}
	if v := os.Getenv("API_KEY_HASH"); v != "" {
		c.APIKeyHash = v
	}
	return nil
}

// Validate checks ranges and fills in a random JWT secret if none is set.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", c.SessionTTL)
	}
	if c.SliderSteps < 0 {
		return fmt.Errorf("slider_steps cannot be negative, got %d", c.SliderSteps)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	if c.JWTSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return err
		}
		c.JWTSecret = secret
		c.EphemeralSecret = true
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate jwt secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

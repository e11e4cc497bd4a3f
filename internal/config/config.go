package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"ollama-scriptgen/internal/param"
	"ollama-scriptgen/internal/script"
)

// Config holds all configuration for the application.
type Config struct {
	APIHost         string
	APIPort         string
	Debug           bool
	LogLevel        slog.Level
	LogFormat       string
	DefaultModel    string
	ShutdownTimeout time.Duration
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return c.APIHost + ":" + c.APIPort
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		APIHost:      getEnv("API_HOST", "0.0.0.0"),
		APIPort:      getEnv("API_PORT", "5000"),
		Debug:        param.ParseBool(getEnv("DEBUG", "false")),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "text")),
		DefaultModel: getEnv("DEFAULT_MODEL", script.DefaultModel),
	}

	if err := ValidatePort(cfg.APIPort); err != nil {
		return nil, err
	}

	level, err := ParseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level
	if cfg.Debug {
		cfg.LogLevel = slog.LevelDebug
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be a valid duration: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be greater than 0")
	}
	cfg.ShutdownTimeout = timeout

	return cfg, nil
}

// ValidatePort checks that port is a number between 1 and 65535.
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("API_PORT must be a valid integer: %w", err)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("API_PORT must be between 1 and 65535, got %d", n)
	}
	return nil
}

// ParseLogLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	return level, nil
}

// loadDotEnv loads the first .env found in the working directory or up to five parents.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

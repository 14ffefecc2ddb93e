// Package config provides cyberterm's runtime configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvContent  = "CYBERTERM_CONTENT"
	EnvLog      = "CYBERTERM_LOG"
	EnvLogLevel = "CYBERTERM_LOG_LEVEL"
	EnvSeed     = "CYBERTERM_SEED"
	EnvNoSplash = "CYBERTERM_NO_SPLASH"
)

// Config holds all application configuration.
type Config struct {
	ContentPath string // catalog file; empty means the embedded catalog
	LogPath     string // empty disables logging
	LogLevel    string
	Seed        int64 // 0 seeds from the runtime
	NoSplash    bool
}

// Load reads a .env file from the working directory, if present, then the
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	seed, err := getEnvInt64(EnvSeed, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %s: %w", EnvSeed, err)
	}

	cfg := &Config{
		ContentPath: getEnv(EnvContent, ""),
		LogPath:     getEnv(EnvLog, ""),
		LogLevel:    getEnv(EnvLogLevel, "info"),
		Seed:        seed,
		NoSplash:    getEnvBool(EnvNoSplash, false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks field values. Flags may change a loaded config, so callers
// validate again after applying them.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Seed < 0 {
		return fmt.Errorf("seed must be >= 0, got %d", c.Seed)
	}
	return nil
}

// SlogLevel returns the configured log level. Call Validate first.
func (c *Config) SlogLevel() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}

package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvContent, EnvLog, EnvLogLevel, EnvSeed, EnvNoSplash} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.ContentPath)
	assert.Equal(t, "", cfg.LogPath)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.NoSplash)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvContent, "/tmp/catalog.yaml")
	t.Setenv(EnvLog, "/tmp/cyberterm.log")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvNoSplash, "yes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.ContentPath)
	assert.Equal(t, "/tmp/cyberterm.log", cfg.LogPath)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.NoSplash)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvLogLevel, "verbose"},
		{EnvSeed, "abc"},
		{EnvSeed, "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_LevelsAccepted(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", ""} {
		cfg := &Config{LogLevel: level}
		assert.NoError(t, cfg.Validate(), level)
	}
}

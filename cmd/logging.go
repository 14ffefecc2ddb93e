package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/cyberterm/internal/config"
)

// openLogger returns a text logger writing to cfg.LogPath, or a discarding
// logger when no path is set. The TUI owns the terminal, so logs never go
// to stdout or stderr.
func openLogger(cfg *config.Config) (*slog.Logger, func() error, error) {
	if cfg.LogPath == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return logger, f.Close, nil
}

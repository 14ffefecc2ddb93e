package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/cyberterm/internal/app"
	"github.com/abhisek/cyberterm/internal/config"
	"github.com/abhisek/cyberterm/internal/content"
	"github.com/abhisek/cyberterm/internal/session"
)

// runtime bundles what every command needs after startup.
type runtime struct {
	cfg     *config.Config
	catalog *content.Catalog
	logger  *slog.Logger
	close   func() error
}

// setup loads configuration, applies flag overrides, opens the log and loads
// the catalog.
func setup(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(cfg.ContentPath)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	logger.Info("catalog loaded",
		"version", catalog.Version(),
		"topics", len(catalog.Topics()),
		"questions", len(catalog.AllQuizQuestions()),
		"source", catalogSource(cfg.ContentPath))

	return &runtime{cfg: cfg, catalog: catalog, logger: logger, close: closeLog}, nil
}

// applyFlags overrides config values with flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentPath, _ = flags.GetString("content")
	}
	if flags.Changed("log") {
		cfg.LogPath, _ = flags.GetString("log")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Lookup("no-splash") != nil && flags.Changed("no-splash") {
		cfg.NoSplash, _ = flags.GetBool("no-splash")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		c, err := content.Default()
		if err != nil {
			return nil, fmt.Errorf("load embedded catalog: %w", err)
		}
		return c, nil
	}
	c, err := content.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// newSession builds a session, seeding the random source when configured.
func (rt *runtime) newSession() *session.Session {
	opts := session.Options{Catalog: rt.catalog, Logger: rt.logger}
	if rt.cfg.Seed != 0 {
		seed := uint64(rt.cfg.Seed)
		opts.Rand = rand.New(rand.NewPCG(seed, seed))
	}
	return session.New(opts)
}

// runApp loads everything and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	rt.logger.Info("starting tui", "splash", !rt.cfg.NoSplash)
	return app.Run(app.Options{
		Session:  rt.newSession(),
		NoSplash: rt.cfg.NoSplash,
	})
}

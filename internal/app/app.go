package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/five82/cosmic/internal/catalog"
	"github.com/five82/cosmic/internal/clock"
	"github.com/five82/cosmic/internal/config"
	"github.com/five82/cosmic/internal/prefs"
	"github.com/five82/cosmic/internal/state"
	"github.com/five82/cosmic/internal/ui"
)

// Options configure the Cosmic application. Non-zero fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cosmic/prefs.toml
	Debounce   time.Duration
	LogFile    string
	LogLevel   string
	Version    string
}

// Run boots the Cosmic TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	clk := clock.Real()
	store := state.New(state.Options{
		Catalog:  catalog.Default(),
		Clock:    clk,
		Logger:   logger,
		Debounce: cfg.SearchDebounce,
		Currency: cfg.Currency,
	})

	logger.Info("cosmic starting",
		"version", opts.Version,
		"debounce", cfg.SearchDebounce.String(),
		"currency", cfg.Currency,
		"theme", userPrefs.Theme,
	)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Clock:     clk,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Format:    userPrefs.Format(),
	})
	if err != nil {
		logger.Error("ui exited", "error", err)
		return fmt.Errorf("run ui: %w", err)
	}

	logger.Info("cosmic stopped")
	return nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if opts.Debounce != 0 {
		if opts.Debounce < 0 {
			return config.Config{}, fmt.Errorf("invalid --debounce %s: must be positive", opts.Debounce)
		}
		cfg.SearchDebounce = opts.Debounce
	}
	if value := strings.TrimSpace(opts.LogFile); value != "" {
		path, err := config.ExpandPath(value)
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid --log-file: %w", err)
		}
		cfg.LogFile = path
	}
	if value := strings.TrimSpace(opts.LogLevel); value != "" {
		level, err := config.ParseLevel(value)
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

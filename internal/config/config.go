package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/cosmic/internal/catalog"
)

// Config captures the settings Cosmic reads at startup.
type Config struct {
	SearchDebounce time.Duration
	Currency       string
	LogFile        string
	LogLevel       slog.Level
	LogMaxSizeMB   int
}

const (
	defaultConfigPath     = "~/.config/cosmic/config.toml"
	defaultLogFile        = "~/.local/state/cosmic/cosmic.log"
	defaultSearchDebounce = 500 * time.Millisecond
	defaultLogMaxSizeMB   = 5
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SearchDebounce: defaultSearchDebounce,
		Currency:       catalog.DefaultCurrency,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       slog.LevelInfo,
		LogMaxSizeMB:   defaultLogMaxSizeMB,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		SearchDebounce string `toml:"search_debounce"`
		Currency       string `toml:"currency"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		LogMaxSizeMB   int    `toml:"log_max_size_mb"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if value := strings.TrimSpace(raw.SearchDebounce); value != "" {
		debounce, err := ParseDebounce(value)
		if err != nil {
			return Config{}, err
		}
		cfg.SearchDebounce = debounce
	}

	if value := strings.ToUpper(strings.TrimSpace(raw.Currency)); value != "" {
		if !catalog.SupportedCurrency(value) {
			return Config{}, fmt.Errorf("invalid currency %q", raw.Currency)
		}
		cfg.Currency = value
	}

	if value := strings.TrimSpace(raw.LogFile); value != "" {
		cfg.LogFile = mustExpand(value)
	}

	if value := strings.TrimSpace(raw.LogLevel); value != "" {
		level, err := ParseLevel(value)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}

	if raw.LogMaxSizeMB > 0 {
		cfg.LogMaxSizeMB = raw.LogMaxSizeMB
	}

	return cfg, nil
}

// ParseDebounce parses a positive Go duration such as "500ms".
func ParseDebounce(value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid search_debounce %q: %w", value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid search_debounce %q: must be positive", value)
	}
	return d, nil
}

// ParseLevel parses debug, info, warn, or error.
func ParseLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", value, err)
	}
	return level, nil
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

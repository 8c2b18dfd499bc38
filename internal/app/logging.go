package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/five82/cosmic/internal/config"
)

const logMaxBackups = 3

// newLogger opens the rotating log file. The TUI owns the terminal, so
// nothing is written to stdout or stderr.
func newLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: logMaxBackups,
		Compress:   true,
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(handler), writer, nil
}

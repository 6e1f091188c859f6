// Package logging builds the zerolog logger used across repobrowser.
//
// The TUI owns the terminal, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourusername/repobrowser/internal/domain"
)

// Options configures the logger
type Options struct {
	Level     string
	Format    string // "json" or "console"
	Component string
	Writer    io.Writer // nil discards all output
}

// New builds a logger from opt
func New(opt Options) zerolog.Logger {
	if opt.Writer == nil {
		return zerolog.Nop()
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	w := opt.Writer
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	return ctx.Logger()
}

// FromConfig opens cfg.File and builds a logger writing to it. The returned
// closer must be closed on exit. With no file configured the logger discards
// everything. debug forces the debug level.
func FromConfig(cfg domain.LogConfig, debug bool) (zerolog.Logger, io.Closer, error) {
	level := cfg.Level
	if debug {
		level = "debug"
	}

	if cfg.File == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	f, err := OpenFile(cfg.File)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	return New(Options{Level: level, Format: "json", Component: "repobrowser", Writer: f}), f, nil
}

// OpenFile opens path for appending, creating parent directories as needed
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// parseLevel supports string-only levels
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

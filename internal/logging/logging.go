// Package logging builds the application logger.
//
// The dashboard owns the terminal, so by default nothing is logged. Setting
// PRICEANATOMY_DEBUG, or passing a log file, turns logging on.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DebugEnvVar enables debug logging when set to any non-empty value.
const DebugEnvVar = "PRICEANATOMY_DEBUG"

// New returns a logger writing to w at level, with "HH:MM:SS.ms" timestamps.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

// DebugEnabled reports whether DebugEnvVar is set.
func DebugEnabled() bool {
	return strings.TrimSpace(os.Getenv(DebugEnvVar)) != ""
}

// Open returns a logger for the interactive dashboard. With an empty path and
// debug off it discards output. The returned closer must be called on exit.
func Open(path string, debug bool) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	if strings.TrimSpace(path) == "" {
		if !debug {
			return Discard(), io.NopCloser(nil), nil
		}
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: opening %s: %w", path, err)
	}
	return New(f, level), f, nil
}

// DefaultPath is the debug log location under the user cache dir.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "priceanatomy", "debug.log")
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or log.Default().
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

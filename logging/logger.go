// Package logging is the process-wide slog façade used by the netgen CLI.
//
// Library packages never log through this package directly; they accept a
// *slog.Logger (see builder.WithLogger). The CLI wires Logger() into them.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = slog.New(NewCompactHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// Logger returns the current process logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return logger
}

// SetLevel switches to the compact console handler on w at level.
func SetLevel(w io.Writer, level slog.Level) {
	set(slog.New(NewCompactHandler(w, &slog.HandlerOptions{Level: level})))
}

// SetJSONOutput switches to JSON records on w at level.
func SetJSONOutput(w io.Writer, level slog.Level) {
	set(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
}

func set(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
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
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Debug logs at DEBUG level (generator internals).
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Info logs at INFO level (user-facing results).
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs at WARN level (policy decisions worth noticing).
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs at ERROR level.
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

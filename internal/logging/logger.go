// Package logging provides structured logging for souschef cooking sessions.
// It wraps log/slog with a JSON handler so session activity can be replayed
// from the log file after the fact.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Logger writes structured JSON log entries. Child loggers created through
// the WithX methods share the parent's file handle, so only the root logger
// should be closed. Safe for concurrent use.
type Logger struct {
	sl   *slog.Logger
	file *os.File
	mu   *sync.Mutex
}

// NewLogger creates a Logger that appends JSON entries to {dir}/souschef.log,
// creating dir if needed. If dir is empty, entries go to stderr. The level
// string is one of DEBUG/INFO/WARN/ERROR (case-insensitive); anything else
// falls back to INFO.
func NewLogger(dir string, level string) (*Logger, error) {
	var w io.Writer = os.Stderr
	var file *os.File

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(dir, "souschef.log"),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		w = f
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	return &Logger{
		sl:   slog.New(handler),
		file: file,
		mu:   &sync.Mutex{},
	}, nil
}

// NopLogger returns a Logger that discards all output. Used in tests and
// when logging is disabled in config.
func NopLogger() *Logger {
	return &Logger{
		sl: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		mu: &sync.Mutex{},
	}
}

// parseLevel maps a level string to its slog.Level, defaulting to INFO.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// child wraps an slog child logger, sharing the parent's file and mutex.
func (l *Logger) child(attrs ...any) *Logger {
	return &Logger{sl: l.sl.With(attrs...), file: l.file, mu: l.mu}
}

// WithRecipe returns a child Logger that tags every entry with the recipe name.
func (l *Logger) WithRecipe(name string) *Logger {
	return l.child("recipe", name)
}

// WithStep returns a child Logger that tags every entry with the zero-based
// step index.
func (l *Logger) WithStep(idx int) *Logger {
	return l.child("step", idx)
}

// WithTimer returns a child Logger that tags every entry with a timer ID.
func (l *Logger) WithTimer(id string) *Logger {
	return l.child("timer_id", id)
}

// Debug logs a message at DEBUG level with optional key-value pairs.
func (l *Logger) Debug(msg string, args ...any) { l.sl.Debug(msg, args...) }

// Info logs a message at INFO level with optional key-value pairs.
func (l *Logger) Info(msg string, args ...any) { l.sl.Info(msg, args...) }

// Warn logs a message at WARN level with optional key-value pairs.
func (l *Logger) Warn(msg string, args ...any) { l.sl.Warn(msg, args...) }

// Error logs a message at ERROR level with optional key-value pairs.
func (l *Logger) Error(msg string, args ...any) { l.sl.Error(msg, args...) }

// Close flushes and closes the log file. A no-op for stderr and nop loggers.
// Call it on the root logger only.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	l.file = nil
	return nil
}

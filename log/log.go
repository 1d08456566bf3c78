// Package log provides structured logging for the block codec. It wraps
// log/slog with per-module child loggers and a choice of JSON or text
// output.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrLevel and ErrFormat are returned for unrecognised configuration
// strings.
var (
	ErrLevel  = errors.New("log: unknown level")
	ErrFormat = errors.New("log: unknown format")
)

// Format selects the handler output encoding.
type Format uint8

const (
	FormatJSON Format = iota
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat parses "json" or "text" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, s)
}

// ParseLevel parses debug, info, warn (or warning) and error,
// case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrLevel, s)
}

// Logger wraps slog.Logger.
type Logger struct {
	inner *slog.Logger
}

var defaultLogger = New(os.Stderr, slog.LevelInfo, FormatJSON)

// New creates a Logger that writes to w at the given level.
func New(w io.Writer, level slog.Level, format Format) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == FormatText {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return &Logger{inner: slog.New(h)}
}

// NewWithHandler creates a Logger backed by the supplied slog.Handler.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return NewWithHandler(slog.DiscardHandler)
}

// SetDefault replaces the package-level default logger. nil is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the package-level default logger.
func Default() *Logger {
	return defaultLogger
}

// Module returns a child logger with a "module" attribute.
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("module", name)}
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

// Enabled reports whether records at level would be written.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.inner.Enabled(context.Background(), level)
}

func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

func (l *Logger) Info(msg string, args ...any) { l.inner.Info(msg, args...) }

func (l *Logger) Warn(msg string, args ...any) { l.inner.Warn(msg, args...) }

func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// Package-level functions log through the default logger.

func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

func Info(msg string, args ...any) { defaultLogger.Info(msg, args...) }

func Warn(msg string, args ...any) { defaultLogger.Warn(msg, args...) }

func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

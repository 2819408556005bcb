// Package logger provides a simple wrapper around slog for structured logging.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/config"
)

// Logger is the global logger instance.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Init configures the global logger from settings. The TUI owns the terminal
// while running, so output goes to a rotating file when one is configured
// and is discarded otherwise.
func Init(settings config.LogSettings) io.Closer {
	opts := &slog.HandlerOptions{Level: parseLevel(settings.Level)}

	if settings.File == "" {
		Logger = slog.New(slog.NewTextHandler(io.Discard, opts))
		return nopCloser{}
	}

	writer := &lumberjack.Logger{
		Filename:   settings.File,
		MaxSize:    settings.MaxSizeMB,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAgeDays,
		Compress:   true,
	}
	Logger = slog.New(slog.NewJSONHandler(writer, opts))
	return writer
}

// InitStderr configures the global logger to write text records to stderr.
// Used by the non-interactive subcommands.
func InitStderr(level string) {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(level)}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

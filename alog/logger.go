// Package alog is the structured logger used throughout the application.
//
// It is a thin layer on top of log/slog that correlates every record with the
// active OpenTelemetry span and allows the level to be changed at run time.
package alog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger interface is a subset of slog.Logger, with the aim to:
//  1. encourage the use of the methods offering context.Context, so that tracing information can be correlated.
//  2. encourage the use of the levels `DEBUG` and `INFO` over others, but without preventing them.
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	With(args ...any) *slog.Logger
	WithGroup(name string) *slog.Logger
}

var _ Logger = (*slog.Logger)(nil)

const (
	// LevelInfo is used to see what is going on inside the application's infrastructure.
	LevelInfo = slog.Level(-8)

	// LevelDebug is used when you really want to know what is going on.
	LevelDebug = slog.Level(-12)
)

// LoggerOpt allows to initialise a logger with custom options.
type LoggerOpt func(h *handler)

// WithHandler adds a slog.Handler to be logged to.
// You can set as many as you want.
func WithHandler(h slog.Handler) LoggerOpt {
	return func(l *handler) {
		l.handlers = append(l.handlers, h)
	}
}

// WithLevel initialises the logger with a starting level.
// To change the level at runtime use Unwrap(logger).SetLevel(level).
func WithLevel(level slog.Level) LoggerOpt {
	return func(l *handler) {
		l.level.Set(level)
	}
}

// New returns a production ready logger.
//
// If no options are given it creates a default handler, logging JSON to Stderr.
// Otherwise, use WithHandler to set your own handlers.
func New(opts ...LoggerOpt) *slog.Logger {
	return slog.New(newHandler(opts...))
}

// NewDevelopment returns a logger writing human-readable text to w,
// starting at slog.LevelDebug.
func NewDevelopment(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	return New(
		WithLevel(slog.LevelDebug),
		WithHandler(slog.NewTextHandler(w, getDebugHandlerOptions())),
	)
}

// NewTest returns a logger writing text to w at the lowest level.
// Use it in tests that want to assert on the log output.
func NewTest(w io.Writer) *slog.Logger {
	return New(
		WithLevel(LevelDebug),
		WithHandler(slog.NewTextHandler(w, getDebugHandlerOptions())),
	)
}

// LevelController offers control over a logger at run time.
// Unwrap a logger to get access to it.
type LevelController interface {
	SetLevel(level slog.Level)
	Level() slog.Level
}

// Unwrap returns the LevelController of a logger created by this package.
// In case logger was not created by alog, it returns nil.
func Unwrap(logger Logger) LevelController { //nolint:ireturn // TestLogger and handler both control the level
	if l, ok := logger.(*TestLogger); ok {
		return l
	}

	sl, ok := logger.(*slog.Logger)
	if !ok {
		return nil
	}

	if h, ok := sl.Handler().(*handler); ok {
		return h
	}

	return nil
}

// ParseLevel maps the names used in configuration files to a slog.Level.
// Unknown names fall back to slog.LevelInfo.
func ParseLevel(name string) slog.Level {
	switch name {
	case "trace":
		return LevelDebug
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MapLogLevelsToName replaces the default name of a custom log level with a speaking name.
func MapLogLevelsToName(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.LevelKey {
		level, _ := attr.Value.Any().(slog.Level)

		levelLabel, exists := getLevelNames()[level]
		if !exists {
			levelLabel = level.String()
		}

		attr.Value = slog.StringValue(levelLabel)
	}

	return attr
}

func getLevelNames() map[slog.Leveler]string {
	return map[slog.Leveler]string{
		LevelInfo:  "USERS:INFO",
		LevelDebug: "USERS:DEBUG",
	}
}

func getDefaultHandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   true,
		Level:       slog.Level(-128), // filtering is done by handler, not by the wrapped ones
		ReplaceAttr: MapLogLevelsToName,
	}
}

// getDebugHandlerOptions keeps the log output readable, by removing not essential keys.
func getDebugHandlerOptions() *slog.HandlerOptions {
	opt := getDefaultHandlerOptions()
	opt.AddSource = false

	return opt
}

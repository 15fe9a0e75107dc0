package alog

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func newHandler(opts ...LoggerOpt) *handler {
	h := &handler{
		level:    &slog.LevelVar{},
		handlers: []slog.Handler{},
	}
	h.level.Set(slog.LevelInfo)

	for _, opt := range opts {
		opt(h)
	}

	if len(h.handlers) == 0 {
		h.handlers = []slog.Handler{slog.NewJSONHandler(os.Stderr, getDefaultHandlerOptions())}
	}

	return h
}

// handler fans each record out to all handlers.
// It is the only place where the level is checked,
// the level of individual handlers set via WithHandler is ignored.
type handler struct {
	// level is shared by all copies made via WithAttrs and WithGroup,
	// so SetLevel changes the level of all derived loggers.
	level *slog.LevelVar

	handlers []slog.Handler
}

var (
	_ slog.Handler    = (*handler)(nil)
	_ LevelController = (*handler)(nil)
)

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *handler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanFromContext(ctx)

	record = addTraceAndSpanIDsToLogs(span, record)

	if attrs := FromContext(ctx); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}

	addLogsToActiveSpanAsEvent(span, record)

	var retErr error

	for _, h := range h.handlers {
		err := h.Handle(ctx, record)
		retErr = errors.Join(retErr, err)
	}

	return retErr
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))

	for i, hh := range h.handlers {
		handlers[i] = hh.WithAttrs(attrs)
	}

	return &handler{level: h.level, handlers: handlers}
}

func (h *handler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))

	for i, hh := range h.handlers {
		handlers[i] = hh.WithGroup(name)
	}

	return &handler{level: h.level, handlers: handlers}
}

// SetLevel changes the level for all handlers, including the ones copied via any WithX method.
func (h *handler) SetLevel(level slog.Level) {
	h.level.Set(level)
}

func (h *handler) Level() slog.Level {
	return h.level.Level()
}

func addTraceAndSpanIDsToLogs(span trace.Span, record slog.Record) slog.Record {
	sCtx := span.SpanContext()

	if sCtx.HasTraceID() {
		record.AddAttrs(slog.String("traceID", sCtx.TraceID().String()))
	}

	if sCtx.HasSpanID() {
		record.AddAttrs(slog.String("spanID", sCtx.SpanID().String()))
	}

	return record
}

func addLogsToActiveSpanAsEvent(span trace.Span, record slog.Record) {
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("log.severity", record.Level.String()),
		attribute.String("log.message", record.Message),
	}

	record.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, attribute.String(a.Key, a.Value.String()))

		return true
	})

	span.AddEvent("log", trace.WithAttributes(attrs...))

	if record.Level >= slog.LevelError {
		span.SetStatus(codes.Error, record.Message)
	}
}

package alog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/go-arrower/users/alog"
)

var ctx = context.Background()

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default level is info", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		logger := alog.New(alog.WithHandler(slog.NewTextHandler(buf, nil)))

		logger.DebugContext(ctx, "debug msg")
		logger.InfoContext(ctx, "info msg")

		assert.NotContains(t, buf.String(), "debug msg")
		assert.Contains(t, buf.String(), "info msg")
	})

	t.Run("log to all handlers", func(t *testing.T) {
		t.Parallel()

		buf0 := &bytes.Buffer{}
		buf1 := &bytes.Buffer{}
		logger := alog.New(
			alog.WithHandler(slog.NewTextHandler(buf0, nil)),
			alog.WithHandler(slog.NewJSONHandler(buf1, nil)),
		)

		logger.InfoContext(ctx, "hello")

		assert.Contains(t, buf0.String(), "msg=hello")
		assert.Contains(t, buf1.String(), `"msg":"hello"`)
	})
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	t.Run("change level at run time", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		logger := alog.NewDevelopment(buf)
		grouped := logger.WithGroup("users")

		alog.Unwrap(logger).SetLevel(slog.LevelWarn)
		assert.Equal(t, slog.LevelWarn, alog.Unwrap(logger).Level())

		grouped.InfoContext(ctx, "not visible")
		assert.Empty(t, buf.String(), "level applies to derived loggers as well")

		alog.Unwrap(logger).SetLevel(alog.LevelDebug)
		grouped.Log(ctx, alog.LevelDebug, "visible")
		assert.Contains(t, buf.String(), "level=USERS:DEBUG")
	})

	t.Run("foreign logger", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, alog.Unwrap(slog.Default()))
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"trace":   alog.LevelDebug,
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}

	for name, level := range tests {
		assert.Equal(t, level, alog.ParseLevel(name), name)
	}
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("add attributes", func(t *testing.T) {
		t.Parallel()

		ctx := alog.AddAttr(ctx, slog.String("initial", "attr")) //nolint:govet // shadow ctx for this test only
		ctx = alog.AddAttrs(ctx, slog.String("some", "attr"), slog.String("other", "attr"))

		assert.Len(t, alog.FromContext(ctx), 3)
	})

	t.Run("clear attributes", func(t *testing.T) {
		t.Parallel()

		ctx := alog.AddAttr(ctx, slog.String("some", "attr")) //nolint:govet // shadow ctx for this test only
		ctx = alog.ClearAttrs(ctx)

		assert.Empty(t, alog.FromContext(ctx))
	})

	t.Run("empty ctx has no attributes", func(t *testing.T) {
		t.Parallel()

		attrs := alog.FromContext(ctx)
		assert.NotNil(t, attrs)
		assert.Empty(t, attrs)
	})

	t.Run("attributes are logged", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)

		logger.InfoContext(alog.AddAttr(ctx, slog.Int("userID", 7)), "found")

		logger.Contains("userID=7")
	})
}

func TestTracing(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	newCtx, span := provider.Tracer("test").Start(ctx, "span")

	logger := alog.Test(t)
	logger.InfoContext(newCtx, "inside span")
	span.End()

	logger.Contains("traceID=" + span.SpanContext().TraceID().String())
	logger.Contains("spanID=" + span.SpanContext().SpanID().String())

	ended := recorder.Ended()
	assert.Len(t, ended, 1)
	assert.Len(t, ended[0].Events(), 1, "log is added to the span as event")
}

func TestNewNoop(t *testing.T) {
	t.Parallel()

	logger := alog.NewNoop()
	logger.InfoContext(ctx, "nothing")

	assert.False(t, logger.Enabled(ctx, slog.LevelError))
}

// Package app provides the use case interfaces of the application layer
// and decorators adding logging, validation, tracing, and metrics to them.
package app

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-arrower/users/alog"
)

// Request can produce side effects and return data.
type Request[Req any, Res any] interface {
	H(ctx context.Context, req Req) (Res, error)
}

// Command produces side effects, e.g. mutate state.
type Command[C any] interface {
	H(ctx context.Context, cmd C) error
}

// Query does not produce side effects and returns data.
type Query[Q any, Res any] interface {
	H(ctx context.Context, query Q) (Res, error)
}

// RequestFunc lets an ordinary function act as a Request (or Query).
type RequestFunc[Req any, Res any] func(ctx context.Context, req Req) (Res, error)

func (f RequestFunc[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	return f(ctx, req)
}

// CommandFunc lets an ordinary function act as a Command.
type CommandFunc[C any] func(ctx context.Context, cmd C) error

func (f CommandFunc[C]) H(ctx context.Context, cmd C) error {
	return f(ctx, cmd)
}

const (
	kindRequest = "request"
	kindCommand = "command"
	kindQuery   = "query"
)

// NewInstrumentedRequest is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedRequest[Req any, Res any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	req Request[Req, Res],
) Request[Req, Res] {
	return NewTracedRequest(traceProvider, NewMeteredRequest(meterProvider, NewLoggedRequest(logger, req)))
}

// NewInstrumentedCommand is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedCommand[C any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	cmd Command[C],
) Command[C] {
	return NewTracedCommand(traceProvider, NewMeteredCommand(meterProvider, NewLoggedCommand(logger, cmd)))
}

// NewInstrumentedQuery is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedQuery[Q any, Res any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	query Query[Q, Res],
) Query[Q, Res] {
	return NewTracedQuery(traceProvider, NewMeteredQuery(meterProvider, NewLoggedQuery(logger, query)))
}

// asRequest lets the decorators treat a Command like a Request without a result.
func asRequest[C any](cmd Command[C]) Request[C, struct{}] { //nolint:ireturn // adapter
	return RequestFunc[C, struct{}](func(ctx context.Context, c C) (struct{}, error) {
		return struct{}{}, cmd.H(ctx, c) //nolint:wrapcheck // decorate but not change anything
	})
}

// asCommand is the reverse of asRequest.
func asCommand[C any](req Request[C, struct{}]) Command[C] { //nolint:ireturn // adapter
	return CommandFunc[C](func(ctx context.Context, c C) error {
		_, err := req.H(ctx, c)

		return err //nolint:wrapcheck // decorate but not change anything
	})
}

// commandName extracts a printable name from cmd in the format of: contextName.packageName.structName.
//
// The use case function itself can not be used, as it is a closure returned by the use case constructor.
// If cmd does not live inside a Context, the fallback is packageName.structName.
func commandName(cmd any) string {
	pkgPath := reflect.TypeOf(cmd).PkgPath()

	// example: github.com/go-arrower/users/contexts/users/internal/application
	// take string after /contexts/ and then take string before /internal/
	afterContexts := strings.Split(pkgPath, "/contexts/")
	if len(afterContexts) == 2 { //nolint:mnd
		beforeInternal := strings.Split(afterContexts[1], "/internal/")
		if len(beforeInternal) == 2 { //nolint:mnd
			return fmt.Sprintf("%s.%T", beforeInternal[0], cmd)
		}
	}

	return fmt.Sprintf("%T", cmd)
}

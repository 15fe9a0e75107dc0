package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "users.application"

func NewTracedRequest[Req any, Res any](traceProvider trace.TracerProvider, req Request[Req, Res]) Request[Req, Res] {
	return newTracingDecorator(traceProvider, kindRequest, req)
}

func NewTracedQuery[Q any, Res any](traceProvider trace.TracerProvider, query Query[Q, Res]) Query[Q, Res] {
	return newTracingDecorator[Q, Res](traceProvider, kindQuery, query)
}

func NewTracedCommand[C any](traceProvider trace.TracerProvider, cmd Command[C]) Command[C] {
	return asCommand[C](newTracingDecorator[C, struct{}](traceProvider, kindCommand, asRequest[C](cmd)))
}

func newTracingDecorator[Req any, Res any](
	traceProvider trace.TracerProvider,
	kind string,
	base Request[Req, Res],
) *tracingDecorator[Req, Res] {
	return &tracingDecorator[Req, Res]{
		tracer: traceProvider.Tracer(instrumentationName),
		kind:   kind,
		base:   base,
	}
}

type tracingDecorator[Req any, Res any] struct {
	tracer trace.Tracer
	kind   string
	base   Request[Req, Res]
}

func (d *tracingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	newCtx, span := d.tracer.Start(ctx, "usecase",
		trace.WithAttributes(
			attribute.String("command", commandName(req)),
			attribute.String("kind", d.kind),
		),
	)
	defer span.End()

	res, err := d.base.H(newCtx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}

	return res, err //nolint:wrapcheck // decorate but not change anything
}

package app

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func NewMeteredRequest[Req any, Res any](meterProvider metric.MeterProvider, req Request[Req, Res]) Request[Req, Res] {
	return newMeteringDecorator(meterProvider, kindRequest, req)
}

func NewMeteredQuery[Q any, Res any](meterProvider metric.MeterProvider, query Query[Q, Res]) Query[Q, Res] {
	return newMeteringDecorator[Q, Res](meterProvider, kindQuery, query)
}

func NewMeteredCommand[C any](meterProvider metric.MeterProvider, cmd Command[C]) Command[C] {
	return asCommand[C](newMeteringDecorator[C, struct{}](meterProvider, kindCommand, asRequest[C](cmd)))
}

func newMeteringDecorator[Req any, Res any](
	meterProvider metric.MeterProvider,
	kind string,
	base Request[Req, Res],
) *meteringDecorator[Req, Res] {
	meter := meterProvider.Meter(instrumentationName)

	// errors are only returned for invalid instrument names, which are constant here
	counter, _ := meter.Int64Counter("usecases", metric.WithDescription("number of executed use cases"))
	duration, _ := meter.Float64Histogram("usecases_duration_seconds", metric.WithDescription("duration of executed use cases"))

	return &meteringDecorator[Req, Res]{
		counter:  counter,
		duration: duration,
		kind:     kind,
		base:     base,
	}
}

type meteringDecorator[Req any, Res any] struct {
	counter  metric.Int64Counter
	duration metric.Float64Histogram
	kind     string
	base     Request[Req, Res]
}

func (d *meteringDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	start := time.Now()

	res, err := d.base.H(ctx, req)

	status := "success"
	if err != nil {
		status = "failure"
	}

	opt := metric.WithAttributes(
		attribute.String("command", commandName(req)),
		attribute.String("kind", d.kind),
		attribute.String("status", status),
	)

	d.counter.Add(ctx, 1, opt)
	d.duration.Record(ctx, time.Since(start).Seconds(), opt)

	return res, err //nolint:wrapcheck // decorate but not change anything
}

package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	prometheusSDK "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/go-arrower/users/alog"
	"github.com/go-arrower/users/cmd"
)

var ErrMissingDependency = errors.New("missing dependency")

// Container holds global dependencies that can be used within each Context, to make initialisation easier.
type Container struct {
	Logger        alog.Logger
	MeterProvider *metric.MeterProvider
	TraceProvider *trace.TracerProvider

	// Registry collects all metrics of MeterProvider.
	// It is not the prometheus default registry, so each Container can be gathered on its own.
	Registry *prometheusSDK.Registry

	Config *Config

	RootCmd *cobra.Command

	startedAt time.Time
}

func (c *Container) EnsureAllDependenciesPresent() error {
	if c.Config == nil {
		return fmt.Errorf("%w: global config not found", ErrMissingDependency)
	}

	if c.Logger == nil || c.TraceProvider == nil || c.MeterProvider == nil {
		return fmt.Errorf("%w: observability not initialised", ErrMissingDependency)
	}

	if c.RootCmd == nil {
		return fmt.Errorf("%w: root command not found", ErrMissingDependency)
	}

	return nil
}

func InitialiseDefaultDependencies(ctx context.Context, conf *Config) (*Container, error) {
	if conf == nil {
		return nil, fmt.Errorf("%w: global config not found", ErrMissingDependency)
	}

	dc := &Container{
		Config:    conf,
		startedAt: time.Now(),
	}

	{ // observability
		resource := resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(conf.ApplicationName),
			attribute.String("environment", string(conf.Environment)),
		)

		{ // traces
			opts := []trace.TracerProviderOption{
				trace.WithResource(resource),
				trace.WithSampler(trace.AlwaysSample()),
			}

			if conf.OTEL.Enabled {
				exporterOpts := []otlptracegrpc.Option{
					otlptracegrpc.WithEndpoint(fmt.Sprintf("%s:%d", conf.OTEL.Host, conf.OTEL.Port)),
					otlptracegrpc.WithInsecure(),
				}

				if conf.Environment == TestEnv {
					// while unit testing no otel endpoint is running and shutdown would block until ctx expires
					exporterOpts = append(exporterOpts, otlptracegrpc.WithTimeout(10*time.Millisecond))
				}

				traceExporter, err := otlptracegrpc.New(ctx, exporterOpts...)
				if err != nil {
					return nil, fmt.Errorf("could not connect to trace exporter: %w", err)
				}

				opts = append(opts, trace.WithBatcher(traceExporter))
			}

			dc.TraceProvider = trace.NewTracerProvider(opts...)
			otel.SetTracerProvider(dc.TraceProvider)
		}

		{ // metrics
			dc.Registry = prometheusSDK.NewRegistry()

			exporter, err := prometheus.New(prometheus.WithRegisterer(dc.Registry))
			if err != nil {
				return nil, fmt.Errorf("could not create prometheus exporter: %w", err)
			}

			dc.MeterProvider = metric.NewMeterProvider(
				metric.WithResource(resource),
				metric.WithReader(exporter),
			)
			otel.SetMeterProvider(dc.MeterProvider)
		}
	}

	{ // logger
		var logger *slog.Logger

		if conf.Environment == LocalEnv {
			logger = alog.NewDevelopment(os.Stderr)
		} else {
			logger = alog.New()
		}

		alog.Unwrap(logger).SetLevel(alog.ParseLevel(conf.Log.Level))

		dc.Logger = logger.With(
			slog.String("application_name", conf.ApplicationName),
			slog.String("git_hash", gitHash()),
			slog.String("environment", string(conf.Environment)),
		)
	}

	dc.RootCmd = cmd.NewRootCmd(conf.ApplicationName, dc.Logger, dc.Registry)

	return dc, nil
}

func (c *Container) Shutdown(ctx context.Context) error {
	c.Logger.LogAttrs(ctx, alog.LevelInfo, "shutting down")

	return errors.Join(
		c.TraceProvider.Shutdown(ctx),
		c.MeterProvider.Shutdown(ctx),
	)
}

func gitHash() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}

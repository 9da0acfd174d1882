package instrumentation

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	olog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"opencsg.com/github-team-membership/common/config"
)

// collector is the parsed form of Instrumentation.OTLPEndpoint.
type collector struct {
	endpoint string
	insecure bool
}

func parseCollector(s string) (collector, error) {
	u, err := url.Parse(s)
	if err != nil {
		return collector{}, err
	}
	if u.Host == "" {
		return collector{}, errors.New("otlp endpoint must be an absolute url, got " + s)
	}
	return collector{endpoint: u.Host, insecure: u.Scheme != "https"}, nil
}

// SetupOTelSDK installs the global trace, meter and (optionally) logger
// providers. It is a no-op when no OTLP endpoint is configured. The returned
// function flushes and stops every provider that was started.
func SetupOTelSDK(ctx context.Context, config *config.Config) (func(context.Context) error, error) {
	if config.Instrumentation.OTLPEndpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	col, err := parseCollector(config.Instrumentation.OTLPEndpoint)
	if err != nil {
		return nil, err
	}

	var shutdownFuncs []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}
	fail := func(err error) (func(context.Context) error, error) {
		return nil, errors.Join(err, shutdown(ctx))
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := resource.New(ctx,
		resource.WithProcess(),
		resource.WithOS(),
		resource.WithHost(),
		resource.WithAttributes(semconv.ServiceNameKey.String(config.ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	tracerProvider, err := newTracerProvider(ctx, col, res)
	if err != nil {
		return fail(err)
	}
	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)

	meterProvider, err := newMeterProvider(ctx, col, res)
	if err != nil {
		return fail(err)
	}
	shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)
	otel.SetMeterProvider(meterProvider)

	if config.Instrumentation.OTLPLogging {
		loggerProvider, err := newLoggerProvider(ctx, col, res)
		if err != nil {
			return fail(err)
		}
		shutdownFuncs = append(shutdownFuncs, loggerProvider.Shutdown)
		global.SetLoggerProvider(loggerProvider)
		// keep the local handler, also ship every record to the collector
		slog.SetDefault(slog.New(slogmulti.Fanout(
			slog.Default().Handler(),
			otelslog.NewHandler(config.ServiceName),
		)))
	}

	if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(10 * time.Second)); err != nil {
		return fail(err)
	}
	return shutdown, nil
}

func newTracerProvider(ctx context.Context, col collector, res *resource.Resource) (*trace.TracerProvider, error) {
	options := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(col.endpoint)}
	if col.insecure {
		options = append(options, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(options...))
	if err != nil {
		return nil, err
	}
	return trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	), nil
}

func newMeterProvider(ctx context.Context, col collector, res *resource.Resource) (*metric.MeterProvider, error) {
	options := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(col.endpoint)}
	if col.insecure {
		options = append(options, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, options...)
	if err != nil {
		return nil, err
	}
	return metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(exporter)),
		metric.WithResource(res),
	), nil
}

func newLoggerProvider(ctx context.Context, col collector, res *resource.Resource) (*olog.LoggerProvider, error) {
	options := []otlploggrpc.Option{otlploggrpc.WithEndpoint(col.endpoint)}
	if col.insecure {
		options = append(options, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, options...)
	if err != nil {
		return nil, err
	}
	return olog.NewLoggerProvider(
		olog.WithProcessor(olog.NewBatchProcessor(exporter)),
		olog.WithResource(res),
	), nil
}

// SetupOtelMiddleware traces every request when an OTLP endpoint is configured.
func SetupOtelMiddleware(r *gin.Engine, config *config.Config) {
	if config.Instrumentation.OTLPEndpoint != "" {
		r.Use(otelgin.Middleware(config.ServiceName))
	}
}

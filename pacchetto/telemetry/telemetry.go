package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	slogmulti "github.com/samber/slog-multi"
	"github.com/taldoflemis/rustic-roots/pacchetto"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const serviceNamespace = "rustic-roots"

// SetupOTelSDK installs the global tracer, meter and logger providers and the
// default slog logger. With telemetry disabled the providers stay local and
// logs go to stdout only. The returned shutdown flushes every provider.
func SetupOTelSDK(
	ctx context.Context,
	app pacchetto.AppSettings,
	cfg pacchetto.OpenTelemetrySettings,
) (func(context.Context) error, error) {
	var closers []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var err error
		for _, closeFn := range closers {
			err = errors.Join(err, closeFn(ctx))
		}
		closers = nil
		return err
	}
	fail := func(err error) (func(context.Context) error, error) {
		return nil, errors.Join(err, shutdown(ctx))
	}

	res, err := newResource(ctx, app)
	if err != nil {
		return nil, err
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tracerProvider, err := newTracerProvider(ctx, cfg, res)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)

	meterProvider, err := newMeterProvider(ctx, cfg, res)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, meterProvider.Shutdown)
	otel.SetMeterProvider(meterProvider)

	loggerProvider, err := newLoggerProvider(ctx, cfg, res)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, loggerProvider.Shutdown)
	global.SetLoggerProvider(loggerProvider)

	slog.SetDefault(newLogger(app, cfg, loggerProvider))

	if err := runtime.Start(runtime.WithMeterProvider(meterProvider)); err != nil {
		return fail(err)
	}

	slog.InfoContext(ctx, "telemetry initialized", slog.Bool("export", cfg.Enabled))

	return shutdown, nil
}

func newResource(ctx context.Context, app pacchetto.AppSettings) (*resource.Resource, error) {
	return resource.New(ctx, resource.WithAttributes(
		semconv.ServiceNameKey.String(app.Name),
		semconv.ServiceVersionKey.String(app.Version),
		semconv.ServiceNamespaceKey.String(serviceNamespace),
		semconv.DeploymentEnvironmentKey.String(app.Env),
	))
}

func seconds(n int64) time.Duration {
	return time.Duration(n) * time.Second
}

func newTracerProvider(
	ctx context.Context,
	cfg pacchetto.OpenTelemetrySettings,
	res *resource.Resource,
) (*trace.TracerProvider, error) {
	if !cfg.Enabled {
		return trace.NewTracerProvider(trace.WithResource(res)), nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	return trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.Traces.SampleRate))),
		trace.WithBatcher(exporter,
			trace.WithBatchTimeout(seconds(cfg.Traces.TimeoutInSec)),
			trace.WithMaxQueueSize(cfg.Traces.MaxQueueSize),
			trace.WithMaxExportBatchSize(cfg.Traces.BatchSize),
		),
	), nil
}

func newMeterProvider(
	ctx context.Context,
	cfg pacchetto.OpenTelemetrySettings,
	res *resource.Resource,
) (*metric.MeterProvider, error) {
	if !cfg.Enabled {
		return metric.NewMeterProvider(metric.WithResource(res)), nil
	}

	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	reader := metric.NewPeriodicReader(exporter,
		metric.WithInterval(seconds(cfg.Metrics.IntervalInSec)),
		metric.WithTimeout(seconds(cfg.Metrics.TimeoutInSec)),
	)

	return metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(reader),
	), nil
}

func newLoggerProvider(
	ctx context.Context,
	cfg pacchetto.OpenTelemetrySettings,
	res *resource.Resource,
) (*log.LoggerProvider, error) {
	if !cfg.Enabled {
		return log.NewLoggerProvider(log.WithResource(res)), nil
	}

	exporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithEndpoint(cfg.Endpoint),
		otlploggrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	processor := log.NewBatchProcessor(exporter,
		log.WithMaxQueueSize(cfg.Logs.MaxQueueSize),
		log.WithExportMaxBatchSize(cfg.Logs.BatchSize),
		log.WithExportTimeout(seconds(cfg.Logs.TimeoutInSec)),
		log.WithExportInterval(seconds(cfg.Logs.IntervalInSec)),
	)

	return log.NewLoggerProvider(
		log.WithResource(res),
		log.WithProcessor(processor),
	), nil
}

// newLogger writes JSON to stdout and, when exporting, also to the OTLP
// logger provider. Error attributes are expanded on both outputs.
func newLogger(app pacchetto.AppSettings, cfg pacchetto.OpenTelemetrySettings, provider *log.LoggerProvider) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true})

	if cfg.Enabled {
		handler = slogmulti.Fanout(handler, otelslog.NewHandler(
			app.Name,
			otelslog.WithLoggerProvider(provider),
			otelslog.WithVersion(app.Version),
			otelslog.WithSource(true),
		))
	}

	pipeline := slogmulti.Pipe(slogmulti.NewHandleInlineMiddleware(errorFormattingMiddleware))

	return slog.New(pipeline.Handler(handler)).With(slog.String("service", app.Name))
}

package main

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	instrumentationName = "github.com/AntonStoeckl/holdqueue"
	serviceName         = "holdqueue"
	shutdownTimeout     = 5 * time.Second
)

// telemetry holds the OpenTelemetry providers of one CLI run.
// Exporter endpoints follow the standard OTEL_EXPORTER_OTLP_* environment variables.
type telemetry struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	loggerProvider *sdklog.LoggerProvider
}

func setupTelemetry(ctx context.Context) (*telemetry, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", serviceName)),
	)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	metricExporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, errors.Join(err, shutdownAll(traceExporter.Shutdown))
	}

	logExporter, err := otlploghttp.New(ctx)
	if err != nil {
		return nil, errors.Join(err, shutdownAll(traceExporter.Shutdown, metricExporter.Shutdown))
	}

	t := &telemetry{
		tracerProvider: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(traceExporter),
			sdktrace.WithResource(res),
		),
		meterProvider: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
			sdkmetric.WithResource(res),
		),
		loggerProvider: sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
			sdklog.WithResource(res),
		),
	}

	otel.SetTracerProvider(t.tracerProvider)
	otel.SetMeterProvider(t.meterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	global.SetLoggerProvider(t.loggerProvider)

	return t, nil
}

// shutdown flushes all providers. Pending telemetry is lost after shutdownTimeout.
func (t *telemetry) shutdown() error {
	return shutdownAll(
		t.tracerProvider.Shutdown,
		t.meterProvider.Shutdown,
		t.loggerProvider.Shutdown,
	)
}

func shutdownAll(shutdowns ...func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var err error
	for _, shutdown := range shutdowns {
		err = errors.Join(err, shutdown(ctx))
	}

	return err
}

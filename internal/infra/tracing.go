package infra

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/pkg/bininfo"
	"courtside.dev/backend/internal/pkg/observability"
)

// TracerProvider builds the exporting provider and installs it globally. With tracing disabled
// it returns the global no-op provider.
func TracerProvider(conf *appconfig.Config, lc fx.Lifecycle) (trace.TracerProvider, error) {
	if !conf.TracingEnabled {
		return otel.GetTracerProvider(), nil
	}

	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(conf.TracingSampleRate))),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(observability.ServiceName),
			semconv.ServiceVersionKey.String(bininfo.Version),
		)),
	}
	for _, name := range conf.TracingExporters {
		exporter, err := newSpanExporter(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tracesdk.WithBatcher(exporter))
	}

	tp := tracesdk.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	lc.Append(fx.StopHook(tp.Shutdown))

	log.Info().
		Strs("exporters", conf.TracingExporters).
		Float64("sampleRate", conf.TracingSampleRate).
		Msg("infra: tracing: enabled")

	return tp, nil
}

// Tracer is the tracer services start their spans from.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	return tp.Tracer(observability.ServiceName)
}

func newSpanExporter(name string) (tracesdk.SpanExporter, error) {
	switch name {
	case "jaeger":
		return jaeger.New(jaeger.WithCollectorEndpoint())
	case "otlp":
		return otlptracegrpc.New(context.Background())
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	return nil, errors.Errorf("infra: tracing: unknown exporter %q", name)
}

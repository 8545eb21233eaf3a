package otel

import (
	"context"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// A CLI invocation emits its spans in one burst and exits, so batches
// cannot sit in the SDK's default five-second window.
const batchTimeout = 500 * time.Millisecond

// Setup initialises OpenTelemetry tracing for one CLI invocation.
//
// Tracing is opt-in: it activates only when MACROS_ENGINE_OTEL_ENDPOINT
// names an OTLP HTTP collector, and MACROS_ENGINE_OTEL_ENABLED set to
// "false" turns it back off regardless. When inactive, Setup registers no
// global provider and returns a no-op shutdown.
//
// The returned shutdown function flushes pending spans; callers defer it
// so the final batch survives process exit.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	endpoint := os.Getenv("MACROS_ENGINE_OTEL_ENDPOINT")
	if endpoint == "" {
		return noop, nil
	}
	if strings.EqualFold(os.Getenv("MACROS_ENGINE_OTEL_ENABLED"), "false") {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := buildResource(ctx, serviceName)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(batchTimeout)),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// buildResource describes the running binary. The version comes from
// module build info and reads "(devel)" for source builds.
func buildResource(ctx context.Context, serviceName string) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		attrs = append(attrs, semconv.ServiceVersion(info.Main.Version))
	}
	return resource.New(ctx, resource.WithAttributes(attrs...))
}

// Package telemetry traces level generation and turns with OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "asciihero"
	serviceVersion = "0.2.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Options configures Setup.
type Options struct {
	// Exporter receives finished spans. Nil builds an OTLP/HTTP exporter
	// from the OTEL_EXPORTER_OTLP_* environment variables.
	Exporter sdktrace.SpanExporter

	// Attributes are added to the process resource, such as the level seed.
	Attributes []attribute.KeyValue
}

// Setup installs a global tracer provider and returns its shutdown function,
// which flushes pending spans.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	exporter := opts.Exporter
	if exporter == nil {
		exporter, err = otlptracehttp.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("otlp exporter: %w", err)
		}
	}

	res, err := newResource(ctx, opts.Attributes)
	if err != nil {
		return nil, fmt.Errorf("trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process. It is built from detectors only;
// merging with resource.Default() fails on mismatched schema URLs.
func newResource(ctx context.Context, extra []attribute.KeyValue) (*resource.Resource, error) {
	attrs := append([]attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
	}, extra...)

	return resource.New(ctx,
		resource.WithAttributes(attrs...),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithOSType(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
	)
}

// Tracer returns the tracer for one component, named "asciihero/<name>".
// Until Setup runs, spans go to the default no-op provider.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// Disable installs a no-op tracer provider so no spans leave the process.
func Disable() {
	otel.SetTracerProvider(noop.NewTracerProvider())
}

// HoneycombEnv returns the OTLP variables that point the exporter at Honeycomb.
// It returns nil when no API key is set or an endpoint is already configured.
func HoneycombEnv(getenv func(string) string) map[string]string {
	apiKey := getenv("HONEYCOMB_ASCIIHERO_API_KEY")
	if apiKey == "" || getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return nil
	}
	dataset := getenv("HONEYCOMB_ASCIIHERO_DATASET")
	if dataset == "" {
		dataset = serviceName
	}
	return map[string]string{
		"OTEL_EXPORTER_OTLP_ENDPOINT": honeycombEndpoint,
		"OTEL_EXPORTER_OTLP_HEADERS":  fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset),
	}
}

package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracerUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	defer Disable()

	_, span := Tracer("test").Start(context.Background(), "unit.span")
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	if ended[0].Name() != "unit.span" {
		t.Errorf("span name = %q, want %q", ended[0].Name(), "unit.span")
	}
	if got := ended[0].InstrumentationScope().Name; got != "asciihero/test" {
		t.Errorf("tracer name = %q, want %q", got, "asciihero/test")
	}
}

func TestDisable(t *testing.T) {
	Disable()
	_, span := Tracer("test").Start(context.Background(), "dropped")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("no-op provider should produce invalid span contexts")
	}
}

func TestSetupExportsWithResource(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	ctx := context.Background()

	shutdown, err := Setup(ctx, Options{
		Exporter:   exporter,
		Attributes: []attribute.KeyValue{attribute.Int64("game.seed", 42)},
	})
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	defer Disable()

	_, span := Tracer("world").Start(ctx, "dungeon.generate")
	span.End()

	tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	if !ok {
		t.Fatalf("global provider is %T, want *sdktrace.TracerProvider", otel.GetTracerProvider())
	}
	if err := tp.ForceFlush(ctx); err != nil {
		t.Fatalf("ForceFlush() error: %v", err)
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("exported %d spans, want 1", len(spans))
	}
	attrs := spans[0].Resource.Set()
	if v, ok := attrs.Value("service.name"); !ok || v.AsString() != "asciihero" {
		t.Errorf("service.name = %v, want asciihero", v)
	}
	if v, ok := attrs.Value("game.seed"); !ok || v.AsInt64() != 42 {
		t.Errorf("game.seed = %v, want 42", v)
	}

	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown() error: %v", err)
	}
}

func TestHoneycombEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want map[string]string
	}{
		{
			name: "no key",
			env:  map[string]string{},
		},
		{
			name: "endpoint already set",
			env: map[string]string{
				"HONEYCOMB_ASCIIHERO_API_KEY": "k",
				"OTEL_EXPORTER_OTLP_ENDPOINT": "http://localhost:4318",
			},
		},
		{
			name: "default dataset",
			env:  map[string]string{"HONEYCOMB_ASCIIHERO_API_KEY": "k"},
			want: map[string]string{
				"OTEL_EXPORTER_OTLP_ENDPOINT": "https://api.honeycomb.io",
				"OTEL_EXPORTER_OTLP_HEADERS":  "x-honeycomb-team=k,x-honeycomb-dataset=asciihero",
			},
		},
		{
			name: "custom dataset",
			env: map[string]string{
				"HONEYCOMB_ASCIIHERO_API_KEY": "k",
				"HONEYCOMB_ASCIIHERO_DATASET": "dev",
			},
			want: map[string]string{
				"OTEL_EXPORTER_OTLP_ENDPOINT": "https://api.honeycomb.io",
				"OTEL_EXPORTER_OTLP_HEADERS":  "x-honeycomb-team=k,x-honeycomb-dataset=dev",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HoneycombEnv(func(k string) string { return tt.env[k] })
			if len(got) != len(tt.want) {
				t.Fatalf("HoneycombEnv() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

package observability

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

func TestInitTracer_SetsGlobalProvider(t *testing.T) {
	cfg := DefaultTracerConfig("svckit-test")
	// No collector is running in tests; sample nothing so shutdown has no
	// batched spans to export.
	cfg.SampleRate = 0

	tp, err := InitTracer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected tracer init to succeed, got %v", err)
	}
	defer tp.Shutdown(context.Background())

	if otel.GetTracerProvider() != tp {
		t.Error("init should install the provider globally")
	}
}

func TestStartSpan_PropagatesSpanContext(t *testing.T) {
	cfg := DefaultTracerConfig("svckit-test")
	cfg.SampleRate = 0

	tp, err := InitTracer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected tracer init to succeed, got %v", err)
	}
	defer tp.Shutdown(context.Background())

	ctx, span := StartSpan(context.Background(), "registry.lookup")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Error("started span should carry a valid span context")
	}
	if span.IsRecording() {
		t.Error("sampled-out span should not record")
	}
	if !trace.SpanContextFromContext(ctx).IsValid() {
		t.Error("span context should flow through the returned context")
	}
}

package telemetry_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/greeting_processor/pkg/telemetry"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestSetup_Disabled_ReturnsNoopWithPropagator(t *testing.T) {
	tel, err := telemetry.Setup(context.Background(), telemetry.Options{Enabled: false})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if tel.TracerProvider == nil || tel.Propagator == nil || tel.Shutdown == nil {
		t.Fatalf("incomplete telemetry handle: %+v", tel)
	}

	// Контекст из traceparent должен извлекаться и без экспорта.
	carrier := propagation.MapCarrier{"traceparent": "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01"}
	ctx := tel.Propagator.Extract(context.Background(), carrier)
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() || sc.TraceID().String() != "0af7651916cd43dd8448eb211c80319c" {
		t.Fatalf("unexpected span context: %+v", sc)
	}

	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

func TestNewPropagator_Fields(t *testing.T) {
	fields := telemetry.NewPropagator().Fields()
	want := map[string]bool{"traceparent": false, "tracestate": false, "baggage": false}
	for _, f := range fields {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Fatalf("propagator must handle %q, got %v", k, fields)
		}
	}
}

func TestLocal_ProducesValidSpanContext(t *testing.T) {
	tel := telemetry.Local()
	defer func() { _ = tel.Shutdown(context.Background()) }()

	ctx, span := tel.TracerProvider.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	carrier := propagation.MapCarrier{}
	tel.Propagator.Inject(ctx, carrier)
	if carrier.Get("traceparent") == "" {
		t.Fatalf("local telemetry must inject traceparent, got %v", carrier)
	}
}

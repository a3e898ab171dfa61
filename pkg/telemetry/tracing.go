package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Telemetry — явный хэндл трейсинга: провайдер, пропагатор и функция остановки.
// Передаётся в компоненты напрямую, глобальные otel.Set* не используются.
type Telemetry struct {
	TracerProvider trace.TracerProvider
	Propagator     propagation.TextMapPropagator
	Shutdown       func(context.Context) error
}

// Options — параметры экспорта.
type Options struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
	SampleRatio float64
}

// NewPropagator — W3C TraceContext + Baggage.
func NewPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	)
}

// Noop — трейсинг выключен, но контекст из заголовков всё равно извлекается.
func Noop() Telemetry {
	return Telemetry{
		TracerProvider: noop.NewTracerProvider(),
		Propagator:     NewPropagator(),
		Shutdown:       func(context.Context) error { return nil },
	}
}

// Setup настраивает OTLP/HTTP экспорт и семплинг. При Enabled=false возвращает Noop.
func Setup(ctx context.Context, opts Options) (Telemetry, error) {
	if !opts.Enabled {
		return Noop(), nil
	}

	// Дефолты: endpoint и границы семплинга [0..1].
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = "localhost:4318"
	}
	sampleRatio := opts.SampleRatio
	if sampleRatio < 0 {
		sampleRatio = 0
	}
	if sampleRatio > 1 {
		sampleRatio = 1
	}

	// Экспортёр OTLP/HTTP без TLS.
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return Telemetry{}, err
	}

	// ParentBased: решение о семплинге берём у producer'а, если он его передал.
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(opts.ServiceName),
			attribute.String("telemetry.sdk", "opentelemetry"),
		)),
	)

	return Telemetry{
		TracerProvider: traceProvider,
		Propagator:     NewPropagator(),
		Shutdown:       traceProvider.Shutdown,
	}, nil
}

// Local — SDK-провайдер без экспортёра: span'ы получают настоящие trace_id/span_id
// (их можно передать в заголовках), но никуда не отправляются.
func Local() Telemetry {
	tp := sdktrace.NewTracerProvider()
	return Telemetry{
		TracerProvider: tp,
		Propagator:     NewPropagator(),
		Shutdown:       tp.Shutdown,
	}
}

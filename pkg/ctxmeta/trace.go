package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Достаём trace/span из активного спана и возвращаем их как строки для логов.
// Для remote-контекста (извлечённого из заголовков Kafka, без своего спана) тоже работает.

func TraceIDFromContext(ctx context.Context) (string, bool) {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return "", false
	}
	return sc.TraceID().String(), true
}

func SpanIDFromContext(ctx context.Context) (string, bool) {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return "", false
	}
	return sc.SpanID().String(), true
}

package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
	"github.com/Gunvolt24/greeting_processor/internal/ports"
	"github.com/Gunvolt24/greeting_processor/pkg/telemetry"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — публикация приветствий с trace-контекстом в заголовках (traceparent/baggage).
type Producer struct {
	w          writer
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	log        ports.Logger
}

func NewProducer(brokers []string, topic string, tel telemetry.Telemetry, log ports.Logger) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireAll,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{
		w:          w,
		tracer:     tel.TracerProvider.Tracer(tracerName),
		propagator: tel.Propagator,
		log:        log,
	}
}

// Publish — синхронная отправка одного приветствия (ждём подтверждения всех реплик).
func (p *Producer) Publish(ctx context.Context, greeting *domain.Greeting) error {
	payload, err := json.Marshal(greeting)
	if err != nil {
		return fmt.Errorf("marshal greeting: %w", err)
	}

	ctx, span := p.tracer.Start(ctx, "publish_greeting",
		trace.WithSpanKind(trace.SpanKindProducer),
	)
	defer span.End()

	msg := kafka.Message{
		Key:     []byte(greeting.MessageID.String()),
		Value:   payload,
		Headers: []kafka.Header{{Key: "content-type", Value: []byte("application/json")}},
	}
	p.propagator.Inject(ctx, NewHeaderCarrier(&msg.Headers))

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("write greeting %s: %w", greeting.MessageID, err)
	}
	p.log.Infof(ctx, "greeting published id=%s headers=[%s]", greeting.MessageID, formatHeaders(msg.Headers))
	return nil
}

func (p *Producer) Close() error { return p.w.Close() }

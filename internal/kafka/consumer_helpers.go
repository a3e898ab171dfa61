package kafka

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/Gunvolt24/greeting_processor/pkg/metrics"
	"github.com/Gunvolt24/greeting_processor/pkg/validate"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// storedMessage — квитанция о том, что приветствие из сообщения сохранено.
// Создаётся только в persist после успешного Store; без неё commitOffset не вызвать.
type storedMessage struct {
	msg kafka.Message
}

// persist — первая фаза: проверки сообщения, span, разбор и запись в БД.
func (c *Consumer) persist(ctx context.Context, msg *kafka.Message) (storedMessage, error) {
	if len(msg.Value) == 0 {
		return c.fail(ctx, nil, msg, "no_payload",
			fmt.Errorf("%w: partition=%d offset=%d", ErrNoPayload, msg.Partition, msg.Offset))
	}
	if !utf8.Valid(msg.Value) {
		return c.fail(ctx, nil, msg, "decode",
			fmt.Errorf("%w: partition=%d offset=%d", ErrPayloadDecode, msg.Partition, msg.Offset))
	}

	parent := ctx
	if len(msg.Headers) == 0 {
		if c.requireHeaders {
			return c.fail(ctx, nil, msg, "missing_headers",
				fmt.Errorf("%w: partition=%d offset=%d", ErrMissingHeaders, msg.Partition, msg.Offset))
		}
	} else {
		parent = c.propagator.Extract(ctx, NewHeaderCarrier(&msg.Headers))
	}

	spanCtx, span := c.tracer.Start(parent, "consume_payload",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(messageAttributes(msg)...),
	)
	defer span.End()

	c.log.Infof(spanCtx, "message topic=%s partition=%d offset=%d timestamp=%s headers=[%s] payload=%s",
		msg.Topic, msg.Partition, msg.Offset, msg.Time.Format(time.RFC3339Nano), formatHeaders(msg.Headers), msg.Value)

	greeting, err := validate.GreetingFromJSON(spanCtx, c.validator, msg.Value)
	if err != nil {
		return c.fail(spanCtx, span, msg, "invalid",
			fmt.Errorf("decode greeting partition=%d offset=%d: %w", msg.Partition, msg.Offset, err))
	}
	span.SetAttributes(attribute.String("greeting.message_id", greeting.MessageID.String()))

	if err := c.store.Store(spanCtx, greeting); err != nil {
		return c.fail(spanCtx, span, msg, "store",
			fmt.Errorf("store greeting %s offset=%d: %w", greeting.MessageID, msg.Offset, err))
	}

	span.SetStatus(codes.Ok, "")
	metrics.KafkaMessagesProcessed.WithLabelValues(msg.Topic).Inc()
	return storedMessage{msg: *msg}, nil
}

// commitOffset — вторая фаза. Ошибка коммита не фатальна: сообщение придёт повторно.
func (c *Consumer) commitOffset(ctx context.Context, receipt storedMessage) {
	msg := receipt.msg
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		metrics.KafkaCommitFailures.WithLabelValues(msg.Topic).Inc()
		c.log.Warnf(ctx, "commit failed partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
		return
	}
	c.log.Debugf(ctx, "commit queued partition=%d offset=%d", msg.Partition, msg.Offset)
}

// fail — общий путь фатальной ошибки сообщения: метрика, статус span'а, лог.
func (c *Consumer) fail(ctx context.Context, span trace.Span, msg *kafka.Message, reason string, err error) (storedMessage, error) {
	metrics.KafkaMessagesFailed.WithLabelValues(msg.Topic, reason).Inc()
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	c.log.Errorf(ctx, "message failed (%s), consumer stops: %v", reason, err)
	return storedMessage{}, err
}

func messageAttributes(msg *kafka.Message) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.destination.name", msg.Topic),
		attribute.Int("messaging.kafka.partition", msg.Partition),
		attribute.Int64("messaging.kafka.offset", msg.Offset),
		attribute.String("messaging.kafka.message.timestamp", msg.Time.Format(time.RFC3339Nano)),
		attribute.StringSlice("messaging.kafka.headers", NewHeaderCarrier(&msg.Headers).Keys()),
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — умеренная случайность: половина задержки фиксирована,
// вторая половина — случайная. Баланс между стабильностью и случайностью.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

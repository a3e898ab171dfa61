package kafka

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gunvolt24/greeting_processor/internal/ports"
	"github.com/Gunvolt24/greeting_processor/pkg/metrics"
	"github.com/Gunvolt24/greeting_processor/pkg/telemetry"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

const tracerName = "github.com/Gunvolt24/greeting_processor/internal/kafka"

var (
	ErrAlreadyStarted = errors.New("kafka consumer already started")
	ErrSubscribe      = errors.New("kafka subscribe failed")
	ErrNoPayload      = errors.New("message has no payload")
	ErrPayloadDecode  = errors.New("message payload is not valid utf-8")
	ErrMissingHeaders = errors.New("message has no headers")
)

// State — состояние консьюмера. Переходы только вперёд: Idle → Subscribed → Terminated.
type State int32

const (
	StateIdle State = iota
	StateSubscribed
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubscribed:
		return "subscribed"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// reader — минимальный контракт над источником (kafka.Reader),
// чтобы легко подменять его моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// subscriber — проверка, что топик существует и доступен до входа в цикл.
type subscriber interface {
	Subscribe(ctx context.Context, topic string) error
}

// Consumer — обёртка над kafka.Reader + зависимостями (репозиторий, валидатор, трейсинг).
type Consumer struct {
	reader         reader
	sub            subscriber
	store          ports.GreetingRepository
	validator      ports.GreetingValidator
	log            ports.Logger
	tracer         trace.Tracer
	propagator     propagation.TextMapPropagator
	requireHeaders bool
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand

	started   atomic.Bool
	state     atomic.Int32
	closeOnce sync.Once
}

// NewConsumer — конструктор. Оффсеты коммитятся вручную, только после успешного Store.
func NewConsumer(
	cfg *ConsumerConfig,
	store ports.GreetingRepository,
	validator ports.GreetingValidator,
	tel telemetry.Telemetry,
	log ports.Logger,
) (*Consumer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rc := withClientLogging(cfg.ReaderConfig(), log)
	dialer := rc.Dialer
	if dialer == nil {
		dialer = kafka.DefaultDialer
	}

	c := &Consumer{
		reader:         kafka.NewReader(rc),
		sub:            &dialerSubscriber{dialer: dialer, brokers: cfg.Brokers},
		store:          store,
		validator:      validator,
		log:            log,
		tracer:         tel.TracerProvider.Tracer(tracerName),
		propagator:     tel.Propagator,
		requireHeaders: cfg.RequireHeaders,
		retryInitial:   orDefault(cfg.RetryInitial, time.Second),
		retryMax:       orDefault(cfg.RetryMax, 30*time.Second),
		// jitterRand — источник случайности, чтобы рассинхронизировать экспоненциальный backoff.
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	return c, nil
}

// State — текущее состояние (безопасно читать из других горутин).
func (c *Consumer) State() State { return State(c.state.Load()) }

// Run — основной цикл:
// 1) проверяем подписку на топик (ошибка фатальна);
// 2) читаем сообщение без авто-коммита; ошибка чтения — лог и повтор с backoff;
// 3) persist: payload → заголовки → span → JSON → Store;
// 4) commitOffset только по квитанции от persist.
// Любая ошибка шага 3 останавливает консьюмер и возвращается наверх.
func (c *Consumer) Run(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer c.state.Store(int32(StateTerminated))

	rc := c.reader.Config()
	if err := c.sub.Subscribe(ctx, rc.Topic); err != nil {
		c.log.Errorf(ctx, "kafka subscribe failed topic=%s: %v", rc.Topic, err)
		return fmt.Errorf("%w: topic %s: %w", ErrSubscribe, rc.Topic, err)
	}
	c.state.Store(int32(StateSubscribed))
	c.log.Infof(ctx, "kafka consumer subscribed topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	// Экспоненциальный backoff на ошибках FetchMessage с equal-jitter
	retry := c.retryInitial

	for {
		// Читаем сообщение (без автокоммита)
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			// Если контекст отменен -> выходим
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// Иначе - временная ошибка брокера/сети. Ожидаем и повторяем
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(msg.Topic).Inc()

		receipt, err := c.persist(ctx, &msg)
		if err != nil {
			return err
		}
		c.commitOffset(ctx, receipt)
	}
}

// Close - закрывает reader. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}

// dialerSubscriber проверяет метаданные топика у первого доступного брокера.
type dialerSubscriber struct {
	dialer  *kafka.Dialer
	brokers []string
}

func (s *dialerSubscriber) Subscribe(ctx context.Context, topic string) error {
	lastErr := errors.New("no brokers configured")
	for _, broker := range s.brokers {
		partitions, err := s.dialer.LookupPartitions(ctx, "tcp", broker, topic)
		if err != nil {
			lastErr = fmt.Errorf("broker %s: %w", broker, err)
			continue
		}
		if len(partitions) == 0 {
			lastErr = fmt.Errorf("broker %s: topic has no partitions", broker)
			continue
		}
		return nil
	}
	return lastErr
}

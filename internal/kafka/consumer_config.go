package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/greeting_processor/internal/ports"
	"github.com/segmentio/kafka-go"
)

const (
	defaultSessionTimeout    = 6 * time.Second
	defaultHeartbeatInterval = 2 * time.Second
	defaultCommitInterval    = time.Second
)

// ErrInvalidConfig — конфиг консьюмера не прошёл проверку.
var ErrInvalidConfig = errors.New("invalid kafka consumer config")

type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first|last; пусто или неизвестно — last. Дефолт сервиса (first) задаёт config.Kafka

	SessionTimeout    time.Duration
	HeartbeatInterval time.Duration
	// CommitInterval > 0 — асинхронный коммит: CommitMessages ставит оффсет в очередь
	// и не ждёт подтверждения брокера.
	CommitInterval time.Duration
	MaxWait        time.Duration

	// RequireHeaders — сообщение без заголовков останавливает консьюмер.
	RequireHeaders bool

	RetryInitial time.Duration
	RetryMax     time.Duration
}

func (c *ConsumerConfig) Validate() error {
	var errs []error
	if len(c.Brokers) == 0 {
		errs = append(errs, errors.New("brokers are empty"))
	}
	for i, b := range c.Brokers {
		if strings.TrimSpace(b) == "" {
			errs = append(errs, fmt.Errorf("broker #%d is empty", i))
		}
	}
	if strings.TrimSpace(c.Topic) == "" {
		errs = append(errs, errors.New("topic is empty"))
	}
	if strings.TrimSpace(c.GroupID) == "" {
		errs = append(errs, errors.New("group id is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ReaderConfig — конфиг kafka.Reader: consumer group, ручной асинхронный коммит.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:           c.Brokers,
		GroupID:           c.GroupID,
		Topic:             c.Topic,
		SessionTimeout:    orDefault(c.SessionTimeout, defaultSessionTimeout),
		HeartbeatInterval: orDefault(c.HeartbeatInterval, defaultHeartbeatInterval),
		CommitInterval:    orDefault(c.CommitInterval, defaultCommitInterval),
	}
	if c.MaxWait > 0 {
		rc.MaxWait = c.MaxWait
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}

// withClientLogging направляет лог клиента kafka-go (join/rebalance/commit) в логгер сервиса.
func withClientLogging(rc kafka.ReaderConfig, log ports.Logger) kafka.ReaderConfig {
	rc.Logger = kafka.LoggerFunc(func(msg string, args ...any) {
		log.Debugf(context.Background(), "kafka client: %s", fmt.Sprintf(msg, args...))
	})
	rc.ErrorLogger = kafka.LoggerFunc(func(msg string, args ...any) {
		log.Warnf(context.Background(), "kafka client: %s", fmt.Sprintf(msg, args...))
	})
	return rc
}

func orDefault(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}

package kafka_test

import (
	"errors"
	"slices"
	"testing"
	"time"

	mykafka "github.com/Gunvolt24/greeting_processor/internal/kafka"
	kafkago "github.com/segmentio/kafka-go"
)

func TestConsumerConfig_ReaderConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		startOffset string
		wantOffset  int64
	}{
		{"first lower", "first", kafkago.FirstOffset},
		{"first upper", "FIRST", kafkago.FirstOffset},
		{"first spaced", " FiRsT \n", kafkago.FirstOffset},
		{"first tabs", "\tFiRsT\t", kafkago.FirstOffset},
		{"empty -> last", "", kafkago.LastOffset},
		{"explicit last -> last", "last", kafkago.LastOffset},
		{"LAST -> last", "LAST", kafkago.LastOffset},
		{"unknown -> last", "unknown", kafkago.LastOffset},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := mykafka.ConsumerConfig{
				Brokers:     []string{"k1:9092", "k2:9092"},
				Topic:       "greetings",
				GroupID:     "group-1",
				StartOffset: tt.startOffset,

				// Эти поля не участвуют в ReaderConfig, но зададим любые значения
				RequireHeaders: true,
				RetryInitial:   1 * time.Second,
				RetryMax:       5 * time.Second,
			}

			rc := cfg.ReaderConfig()

			// 1) StartOffset нормализован
			if rc.StartOffset != tt.wantOffset {
				t.Fatalf("StartOffset: want %d, got %d", tt.wantOffset, rc.StartOffset)
			}

			// 2) Прокинулись базовые поля
			if !slices.Equal(rc.Brokers, cfg.Brokers) {
				t.Fatalf("Brokers: want %v, got %v", cfg.Brokers, rc.Brokers)
			}
			if rc.Topic != cfg.Topic {
				t.Fatalf("Topic: want %s, got %s", cfg.Topic, rc.Topic)
			}
			if rc.GroupID != cfg.GroupID {
				t.Fatalf("GroupID: want %s, got %s", cfg.GroupID, rc.GroupID)
			}
			// 3) Асинхронный коммит и таймауты сессии по умолчанию
			if rc.CommitInterval != time.Second {
				t.Fatalf("CommitInterval: want 1s, got %v", rc.CommitInterval)
			}
			if rc.SessionTimeout != 6*time.Second || rc.HeartbeatInterval != 2*time.Second {
				t.Fatalf("session defaults wrong: session=%v heartbeat=%v", rc.SessionTimeout, rc.HeartbeatInterval)
			}
		})
	}
}

func TestConsumerConfig_ReaderConfig_Overrides(t *testing.T) {
	cfg := mykafka.ConsumerConfig{
		Brokers:           []string{"k1:9092"},
		Topic:             "greetings",
		GroupID:           "g",
		SessionTimeout:    10 * time.Second,
		HeartbeatInterval: 3 * time.Second,
		CommitInterval:    250 * time.Millisecond,
		MaxWait:           500 * time.Millisecond,
	}
	rc := cfg.ReaderConfig()
	if rc.SessionTimeout != 10*time.Second || rc.HeartbeatInterval != 3*time.Second ||
		rc.CommitInterval != 250*time.Millisecond || rc.MaxWait != 500*time.Millisecond {
		t.Fatalf("overrides not applied: %+v", rc)
	}
}

func TestConsumerConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := mykafka.ConsumerConfig{Brokers: []string{"k1:9092"}, Topic: "greetings", GroupID: "g"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name string
		cfg  mykafka.ConsumerConfig
	}{
		{"no brokers", mykafka.ConsumerConfig{Topic: "t", GroupID: "g"}},
		{"blank broker", mykafka.ConsumerConfig{Brokers: []string{" "}, Topic: "t", GroupID: "g"}},
		{"no topic", mykafka.ConsumerConfig{Brokers: []string{"k:9092"}, GroupID: "g"}},
		{"no group", mykafka.ConsumerConfig{Brokers: []string{"k:9092"}, Topic: "t"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.cfg.Validate(); !errors.Is(err, mykafka.ErrInvalidConfig) {
				t.Fatalf("want ErrInvalidConfig, got %v", err)
			}
		})
	}
}

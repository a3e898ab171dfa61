package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Gunvolt24/greeting_processor/config"
	"github.com/Gunvolt24/greeting_processor/internal/domain"
	"github.com/Gunvolt24/greeting_processor/internal/kafka"
	"github.com/Gunvolt24/greeting_processor/pkg/logger"
	"github.com/Gunvolt24/greeting_processor/pkg/telemetry"
	"github.com/Gunvolt24/greeting_processor/pkg/validate"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// CLI для отправки приветствия в Kafka с заголовком traceparent.
// Приветствие берётся из файла (-in) или собирается из флагов.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "greeting-producer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	brokers := flag.String("brokers", strings.Join(cfg.Kafka.Brokers, ","), "comma-separated kafka brokers")
	topic := flag.String("topic", cfg.Kafka.Topic, "target topic")
	inputPath := flag.String("in", "", "path to a single greeting JSON; if empty, built from flags")
	id := flag.String("id", "", "greeting id (uuid); random if empty")
	to := flag.String("to", "Bob", "recipient")
	from := flag.String("from", "Alice", "sender")
	heading := flag.String("heading", "Greeting", "heading")
	message := flag.String("message", "Hello!", "message body")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	greeting, err := loadGreeting(ctx, *inputPath, *id, *to, *from, *heading, *message)
	if err != nil {
		return err
	}

	// локальный SDK-провайдер: span context валиден, traceparent попадает в заголовки
	tel := telemetry.Local()
	defer func() { _ = tel.Shutdown(context.Background()) }()

	producer := kafka.NewProducer(strings.Split(*brokers, ","), *topic, tel, logg)
	defer func() {
		if cErr := producer.Close(); cErr != nil {
			logg.Warnf(ctx, "producer close: %v", cErr)
		}
	}()

	return producer.Publish(ctx, greeting)
}

func loadGreeting(ctx context.Context, path, id, to, from, heading, message string) (*domain.Greeting, error) {
	validator := validate.NewGreetingValidator()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return validate.GreetingFromJSON(ctx, validator, raw)
	}

	messageID := uuid.New()
	if id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse id: %w", err)
		}
		messageID = parsed
	}

	g := &domain.Greeting{
		MessageID: messageID,
		To:        to,
		From:      from,
		Heading:   heading,
		Message:   message,
		Created:   domain.NewNaiveTime(time.Now().Truncate(time.Microsecond)),
	}
	if err := validator.Validate(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

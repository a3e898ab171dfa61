package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/greeting_processor/config"
	"github.com/Gunvolt24/greeting_processor/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "greeting-processor: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// SIGINT/SIGTERM отменяют контекст — компоненты останавливаются штатно.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return a.Run(ctx)
}

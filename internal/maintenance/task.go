package maintenance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/greeting_processor/internal/ports"
	"github.com/Gunvolt24/greeting_processor/pkg/metrics"
	"github.com/Gunvolt24/greeting_processor/pkg/telemetry"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ ports.BackgroundTask = (*Task)(nil)

const (
	tracerName = "github.com/Gunvolt24/greeting_processor/internal/maintenance"

	// DefaultInterval — пауза между запусками generate_logg.
	DefaultInterval = 5 * time.Second
)

var ErrMaintenance = errors.New("maintenance failed")

// Task — периодический вызов generate_logg.
type Task struct {
	repo     ports.LoggRepository
	interval time.Duration
	tracer   trace.Tracer
	log      ports.Logger
}

func NewTask(repo ports.LoggRepository, interval time.Duration, tel telemetry.Telemetry, log ports.Logger) *Task {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Task{
		repo:     repo,
		interval: interval,
		tracer:   tel.TracerProvider.Tracer(tracerName),
		log:      log,
	}
}

// Run — ждём interval, затем generate_logg; и так до отмены контекста.
// Первая же ошибка завершает задачу, повторов нет.
func (t *Task) Run(ctx context.Context) error {
	t.log.Infof(ctx, "maintenance task started interval=%s", t.interval)

	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			t.log.Infof(ctx, "maintenance task stopped")
			return ctx.Err()
		case <-timer.C:
		}

		if err := t.runOnce(ctx); err != nil {
			return err
		}
		// следующий запуск отсчитывается от конца текущего
		timer.Reset(t.interval)
	}
}

func (t *Task) runOnce(ctx context.Context) error {
	spanCtx, span := t.tracer.Start(ctx, "generate_logg")
	defer span.End()

	start := time.Now()
	if err := t.repo.GenerateLogg(spanCtx); err != nil {
		metrics.MaintenanceRuns.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.log.Errorf(spanCtx, "generate_logg failed: %v", err)
		return fmt.Errorf("%w: generate_logg: %w", ErrMaintenance, err)
	}

	metrics.MaintenanceRuns.WithLabelValues("ok").Inc()
	span.SetStatus(codes.Ok, "")
	t.log.Debugf(spanCtx, "generate_logg done in %s", time.Since(start))
	return nil
}

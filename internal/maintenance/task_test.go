package maintenance

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Gunvolt24/greeting_processor/internal/ports/mocks"
	"github.com/Gunvolt24/greeting_processor/pkg/metrics"
	"github.com/Gunvolt24/greeting_processor/pkg/telemetry"
)

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func newTracedTask(t *testing.T, repo *mocks.MockLoggRepository, interval time.Duration) (*Task, *tracetest.SpanRecorder) {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	task := NewTask(repo, interval, telemetry.Noop(), nopLogger{})
	task.tracer = tp.Tracer("test")
	return task, sr
}

func TestNewTask_DefaultInterval(t *testing.T) {
	task := NewTask(nil, 0, telemetry.Noop(), nopLogger{})
	if task.interval != DefaultInterval {
		t.Fatalf("want %s, got %s", DefaultInterval, task.interval)
	}
}

func TestRun_RepeatsUntilCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLoggRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	repo.EXPECT().GenerateLogg(gomock.Any()).DoAndReturn(func(context.Context) error {
		if calls.Add(1) == 3 {
			cancel()
		}
		return nil
	}).MinTimes(3)

	okBefore := testutil.ToFloat64(metrics.MaintenanceRuns.WithLabelValues("ok"))

	task, sr := newTracedTask(t, repo, 2*time.Millisecond)
	err := task.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}

	if got := testutil.ToFloat64(metrics.MaintenanceRuns.WithLabelValues("ok")) - okBefore; got < 3 {
		t.Fatalf("want >= 3 ok runs, got %v", got)
	}
	spans := sr.Ended()
	if len(spans) < 3 {
		t.Fatalf("want >= 3 spans, got %d", len(spans))
	}
	if spans[0].Name() != "generate_logg" || spans[0].Status().Code != codes.Ok {
		t.Fatalf("unexpected span %q status=%v", spans[0].Name(), spans[0].Status())
	}
}

// Пустая таблица маркеров: процедура отрабатывает без ошибок, задача продолжает работу.
func TestRun_EmptyMarkerTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLoggRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo.EXPECT().GenerateLogg(gomock.Any()).DoAndReturn(func(context.Context) error {
		cancel()
		return nil
	}).Times(1)

	task, _ := newTracedTask(t, repo, time.Millisecond)
	if err := task.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestRun_FailureStopsTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLoggRepository(ctrl)

	dbErr := errors.New("connection reset")
	repo.EXPECT().GenerateLogg(gomock.Any()).Return(dbErr).Times(1)

	errBefore := testutil.ToFloat64(metrics.MaintenanceRuns.WithLabelValues("error"))

	task, sr := newTracedTask(t, repo, time.Millisecond)
	err := task.Run(context.Background())
	if !errors.Is(err, ErrMaintenance) || !errors.Is(err, dbErr) {
		t.Fatalf("want ErrMaintenance wrapping cause, got %v", err)
	}

	if got := testutil.ToFloat64(metrics.MaintenanceRuns.WithLabelValues("error")) - errBefore; got != 1 {
		t.Fatalf("want 1 error run, got %v", got)
	}
	spans := sr.Ended()
	if len(spans) != 1 || spans[0].Status().Code != codes.Error {
		t.Fatalf("want one failed span, got %d", len(spans))
	}
}

func TestRun_WaitsIntervalBeforeFirstRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLoggRepository(ctrl)
	// GenerateLogg не ожидается

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	task, _ := newTracedTask(t, repo, time.Hour)
	if err := task.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline exceeded, got %v", err)
	}
}

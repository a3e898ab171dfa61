package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/greeting_processor/config"
	cachemem "github.com/Gunvolt24/greeting_processor/internal/cache/memory"
	"github.com/Gunvolt24/greeting_processor/internal/kafka"
	"github.com/Gunvolt24/greeting_processor/internal/maintenance"
	"github.com/Gunvolt24/greeting_processor/internal/ports"
	"github.com/Gunvolt24/greeting_processor/internal/repo/postgres"
	rest "github.com/Gunvolt24/greeting_processor/internal/transport/http"
	"github.com/Gunvolt24/greeting_processor/internal/usecase"
	"github.com/Gunvolt24/greeting_processor/pkg/logger"
	"github.com/Gunvolt24/greeting_processor/pkg/metrics"
	"github.com/Gunvolt24/greeting_processor/pkg/telemetry"
	"github.com/Gunvolt24/greeting_processor/pkg/validate"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const defaultGracefulTimeout = 5 * time.Second

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer, фоновая задача).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер (/ping, /metrics, /logs)
	MetricsServer   *http.Server          // отдельный листенер /metrics; nil — не нужен
	KafkaConsumer   ports.MessageConsumer // консьюмер сообщений
	Maintenance     ports.BackgroundTask  // периодический generate_logg
	GracefulTimeout time.Duration         // время ожидания завершения HTTP-серверов
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим и файл с ротацией задаются конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLoggerWithFile(cfg.Logger.IsProd, logger.FileOptions{
		Path:       cfg.Logger.File,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
	})
	if err != nil {
		return nil, func() {}, err
	}

	// cleanups копятся по мере сборки и выполняются в обратном порядке.
	var cleanups []func()
	cleanupAll := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	cleanups = append(cleanups, func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	})
	fail := func(err error) (*App, Cleanup, error) {
		logg.Errorf(ctx, "bootstrap failed: %v", err)
		cleanupAll()
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres.
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		return fail(fmt.Errorf("postgres pool: %w", err))
	}
	cleanups = append(cleanups, pool.Close)

	// Миграции схемы (goose, вшитые SQL).
	if cfg.Postgres.AutoMigrate {
		version, mErr := postgres.Migrate(ctx, cfg.Postgres.DSN)
		if mErr != nil {
			return fail(fmt.Errorf("migrate: %w", mErr))
		}
		logg.Infof(ctx, "database migrated, schema version=%d", version)
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op с активным пропагатором.
	tel, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logg.Warnf(ctx, "failed to setup tracing: %v", err)
		tel = telemetry.Noop()
	} else if cfg.Tracing.Enabled {
		logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
			cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
	}
	cleanups = append(cleanups, func() {
		shCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
		defer cancel()
		if tErr := tel.Shutdown(shCtx); tErr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", tErr)
		}
	})

	// Сборка зависимостей доменного слоя.
	greetingRepo := postgres.NewGreetingRepository(pool)
	loggRepo := postgres.NewLoggRepository(pool)
	greetingValidator := validate.NewGreetingValidator()

	// Кэш страниц журнала (короткий TTL).
	var logCache ports.LogPageCache
	if cfg.Cache.TTL > 0 {
		logCache = cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	}
	logService := usecase.NewLogService(loggRepo, logCache, logg)

	// Конфигурация и создание консьюмера Kafka.
	kafkaCfg := kafka.ConsumerConfig{
		Brokers:           cfg.Kafka.Brokers,
		Topic:             cfg.Kafka.Topic,
		GroupID:           cfg.Kafka.GroupID,
		StartOffset:       cfg.Kafka.StartOffset,
		SessionTimeout:    cfg.Kafka.SessionTimeout,
		HeartbeatInterval: cfg.Kafka.HeartbeatInterval,
		CommitInterval:    cfg.Kafka.CommitInterval,
		MaxWait:           cfg.Kafka.MaxWait,
		RequireHeaders:    cfg.Kafka.RequireHeaders,
		RetryInitial:      cfg.Kafka.RetryInitial,
		RetryMax:          cfg.Kafka.RetryMax,
	}
	consumer, err := kafka.NewConsumer(&kafkaCfg, greetingRepo, greetingValidator, tel, logg)
	if err != nil {
		return fail(err)
	}
	cleanups = append(cleanups, func() {
		if cErr := consumer.Close(); cErr != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", cErr)
		}
	})

	// Периодическая задача generate_logg.
	task := maintenance.NewTask(loggRepo, cfg.Maintenance.Interval, tel, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(logService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName,
		otelgin.WithTracerProvider(tel.TracerProvider),
		otelgin.WithPropagators(tel.Propagator),
	)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// /metrics дополнительно на своём порту, если он отличается от основного.
	var metricsSrv *http.Server
	if addr := cfg.Metrics.Addr; addr != "" && addr != cfg.HTTP.Addr {
		metricsSrv = &http.Server{
			Addr:              addr,
			Handler:           rest.NewMetricsRouter(),
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		}
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		KafkaConsumer:   consumer,
		Maintenance:     task,
		GracefulTimeout: defaultGracefulTimeout,
	}

	return app, cleanupAll, nil
}

// Run — запускает консьюмера, фоновую задачу и HTTP-серверы.
// Первая фатальная ошибка любого компонента или отмена ctx останавливает остальных.
// Возвращает фатальную ошибку (nil при штатной остановке).
func (a *App) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 4)
	var wg sync.WaitGroup

	start := func(name string, run func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Logger.Infof(ctx, "%s starting", name)
			if err := run(runCtx); err != nil {
				errCh <- fmt.Errorf("%s: %w", name, err)
			}
		}()
	}

	start("kafka consumer", a.KafkaConsumer.Run)
	if a.Maintenance != nil {
		start("maintenance task", a.Maintenance.Run)
	}
	start("http server", serve(a.HTTPServer))
	if a.MetricsServer != nil {
		start("metrics server", serve(a.MetricsServer))
	}

	// Ожидание сигнала остановки или ошибки компонента.
	var fatal error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "fatal component error: %v", err)
			fatal = err
		}
	}
	cancel()

	gt := a.GracefulTimeout
	if gt <= 0 {
		gt = defaultGracefulTimeout
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), gt)
	defer cancelShutdown()

	for _, srv := range []*http.Server{a.HTTPServer, a.MetricsServer} {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed addr=%s: %v", srv.Addr, err)
		}
	}

	// Остановка Kafka-консьюмера
	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}

	wg.Wait()
	a.Logger.Infof(ctx, "service stopped")
	return fatal
}

func serve(srv *http.Server) func(context.Context) error {
	return func(context.Context) error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

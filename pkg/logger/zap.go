package logger

import (
	"context"

	"github.com/Gunvolt24/greeting_processor/internal/ports"
	"github.com/Gunvolt24/greeting_processor/pkg/ctxmeta"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var _ ports.Logger = (*ZapLogger)(nil)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// FileOptions — дублирование логов в файл с ротацией. Пустой Path — только stderr.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	return NewZapLoggerWithFile(isProd, FileOptions{})
}

func NewZapLoggerWithFile(isProd bool, file FileOptions) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	var rotator *lumberjack.Logger
	if file.Path != "" {
		rotator = &lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAge:     file.MaxAgeDays,
			Compress:   true,
		}
		level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if !isProd {
			level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		// в файл всегда JSON, независимо от режима
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			level,
		)
		logger = logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	loggerWrap := &ZapLogger{
		base:   logger,
		sugar:  logger.WithOptions(zap.AddCallerSkip(1)).Sugar(),
		isProd: isProd,
	}

	cleanup := func() error {
		_ = loggerWrap.base.Sync()
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}
	return loggerWrap, cleanup, nil
}

// NewFromZap оборачивает готовый *zap.Logger (тесты, observer).
func NewFromZap(base *zap.Logger) *ZapLogger {
	return &ZapLogger{
		base:  base,
		sugar: base.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

func (z *ZapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Debugf(format, args...)
}
func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Errorf(format, args...)
}

// withContext добавляет trace_id/span_id/request_id, если они есть в контексте.
func (z *ZapLogger) withContext(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}
	fields := make([]any, 0, 6)
	if id, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", id)
	}
	if id, ok := ctxmeta.SpanIDFromContext(ctx); ok {
		fields = append(fields, "span_id", id)
	}
	if id, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", id)
	}
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/greeting_processor/migrations"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	"github.com/pressly/goose/v3"
)

// txBeginner — то, что нужно репозиториям от пула: открыть транзакцию.
// *pgxpool.Pool подходит; в unit-тестах подменяется фейком.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// NewPool — создаёт пул соединений к Postgres на базе DSN.
// Здесь задаём лимиты по времени жизни/простоя соединений.
// Если maxConns > 0 — переопределяем размер пула.
// В конце выполняем Ping для fail-fast (раньше узнаем о проблемах подключения).
func NewPool(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	// Парсим DSN.
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	// Жизненный цикл соединений — помогает избегать переполнение пула соединений.
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute

	// Пул соединений.
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Проверка соединений.
	if connErr := pool.Ping(ctx); connErr != nil {
		pool.Close()
		return nil, connErr
	}

	return pool, nil
}

// Migrate применяет вшитые миграции (goose provider, без глобального состояния goose).
// Возвращает номер версии схемы после применения.
func Migrate(ctx context.Context, dsn string) (int64, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return 0, fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose version: %w", err)
	}
	return version, nil
}

// rollback — отложенный откат. После Commit вернётся ErrTxClosed — это норма.
// Реальная ошибка отката добавляется к ошибке операции (errp).
func rollback(ctx context.Context, tx pgx.Tx, errp *error) {
	// отменённый ctx не должен мешать откату
	rbErr := tx.Rollback(context.WithoutCancel(ctx))
	if rbErr == nil || errors.Is(rbErr, pgx.ErrTxClosed) {
		return
	}
	*errp = errors.Join(*errp, wrap("rollback", rbErr))
}

package postgres

import (
	"context"
	"time"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
	"github.com/Gunvolt24/greeting_processor/internal/ports"
	"github.com/jackc/pgx/v5"
)

var _ ports.LoggRepository = (*LoggRepository)(nil)

const DefaultListLimit = 100

type loggDB interface {
	txBeginner
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoggRepository — запуск generate_logg и чтение журнала logg.
type LoggRepository struct {
	db loggDB
}

func NewLoggRepository(db loggDB) *LoggRepository { return &LoggRepository{db: db} }

// GenerateLogg — вызывает public.generate_logg() в отдельной транзакции.
func (r *LoggRepository) GenerateLogg(ctx context.Context) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrap("begin", err)
	}
	defer rollback(ctx, tx, &err)

	if _, err := tx.Exec(ctx, `SELECT public.generate_logg()`); err != nil {
		return wrap("generate_logg", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return wrap("commit", err)
	}
	return nil
}

// ListLogEntries — записи журнала, новые первыми.
func (r *LoggRepository) ListLogEntries(ctx context.Context, limit, offset int) ([]domain.LogEntry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, greeting_id, created
		FROM logg
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, wrap("list logg", err)
	}
	defer rows.Close()

	entries := make([]domain.LogEntry, 0)
	for rows.Next() {
		var (
			entry   domain.LogEntry
			created time.Time
		)
		if err := rows.Scan(&entry.ID, &entry.GreetingID, &created); err != nil {
			return nil, wrap("scan logg", err)
		}
		entry.Created = domain.NewNaiveTime(created)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list logg", err)
	}
	return entries, nil
}

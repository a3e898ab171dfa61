package postgres

import (
	"context"
	"errors"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
	"github.com/Gunvolt24/greeting_processor/internal/ports"
)

// Проверка, что GreetingRepository удовлетворяет интерфейсу GreetingRepository.
var _ ports.GreetingRepository = (*GreetingRepository)(nil)

const (
	insertGreetingSQL = `
		INSERT INTO greeting (message_id, "from", "to", heading, message, created)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	insertMarkerSQL = `INSERT INTO ikke_paa_logg (greeting_id) VALUES ($1)`
)

// GreetingRepository — запись приветствий (greeting + ikke_paa_logg) одной транзакцией.
type GreetingRepository struct {
	db txBeginner
}

func NewGreetingRepository(db txBeginner) *GreetingRepository { return &GreetingRepository{db: db} }

// Store — атомарно пишет приветствие и маркер для generate_logg.
// Не идемпотентен: повторный вызов с тем же приветствием создаёт вторую пару строк.
func (r *GreetingRepository) Store(ctx context.Context, greeting *domain.Greeting) (err error) {
	if greeting == nil {
		return wrap("store", errors.New("greeting is nil"))
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrap("begin", err)
	}
	defer rollback(ctx, tx, &err)

	var id int64
	if err := tx.QueryRow(ctx, insertGreetingSQL,
		greeting.MessageID, greeting.From, greeting.To, greeting.Heading, greeting.Message, greeting.Created.Time,
	).Scan(&id); err != nil {
		return wrap("insert greeting", err)
	}

	if _, err := tx.Exec(ctx, insertMarkerSQL, id); err != nil {
		return wrap("insert ikke_paa_logg", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return wrap("commit", err)
	}
	return nil
}

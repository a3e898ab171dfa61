package ports

import (
	"context"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
)

// GreetingRepository — долговременное хранилище приветствий.
// Store пишет greeting и маркер ikke_paa_logg в одной транзакции; повторный вызов создаёт новую пару строк.
type GreetingRepository interface {
	Store(ctx context.Context, greeting *domain.Greeting) error
}

// LoggRepository — таблица logg и серверная процедура generate_logg.
type LoggRepository interface {
	GenerateLogg(ctx context.Context) error
	ListLogEntries(ctx context.Context, limit, offset int) ([]domain.LogEntry, error)
}

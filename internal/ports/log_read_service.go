package ports

import (
	"context"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
)

// LogReadService — сервис чтения журнала (для HTTP).
type LogReadService interface {
	ListLogEntries(ctx context.Context, limit, offset int) ([]domain.LogEntry, error)
}

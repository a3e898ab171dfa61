package ports

import (
	"context"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
)

// LogPageCache — кэш страниц журнала logg по (limit, offset).
type LogPageCache interface {
	Get(ctx context.Context, limit, offset int) ([]domain.LogEntry, bool)
	Set(ctx context.Context, limit, offset int, entries []domain.LogEntry) error
}

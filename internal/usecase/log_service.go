package usecase

import (
	"context"
	"time"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
	"github.com/Gunvolt24/greeting_processor/internal/ports"
)

var _ ports.LogReadService = (*LogService)(nil)

// LogService — чтение журнала logg для HTTP (без знаний о транспорте).
type LogService struct {
	repo  ports.LoggRepository
	cache ports.LogPageCache // nil — без кэша
	log   ports.Logger
}

// NewLogService — DI-конструктор. cache может быть nil.
func NewLogService(repo ports.LoggRepository, cache ports.LogPageCache, log ports.Logger) *LogService {
	return &LogService{repo: repo, cache: cache, log: log}
}

// ListLogEntries — страница журнала, новые записи первыми: сначала кэш, при промахе — БД.
// Пустой журнал — пустой срез, не nil.
func (s *LogService) ListLogEntries(ctx context.Context, limit, offset int) ([]domain.LogEntry, error) {
	if s.cache != nil {
		if entries, found := s.cache.Get(ctx, limit, offset); found {
			s.log.Debugf(ctx, "cache hit for logs limit=%d offset=%d", limit, offset)
			return entries, nil
		}
	}

	start := time.Now()
	entries, err := s.repo.ListLogEntries(ctx, limit, offset)
	if err != nil {
		s.log.Errorf(ctx, "repo.ListLogEntries failed limit=%d offset=%d err=%v", limit, offset, err)
		return nil, err
	}
	if entries == nil {
		entries = []domain.LogEntry{}
	}
	s.log.Debugf(ctx, "log entries fetched count=%d limit=%d offset=%d in %s", len(entries), limit, offset, time.Since(start))

	if s.cache != nil {
		if setErr := s.cache.Set(ctx, limit, offset, entries); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed limit=%d offset=%d err=%v", limit, offset, setErr)
		}
	}
	return entries, nil
}

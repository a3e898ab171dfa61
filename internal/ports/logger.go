package ports

import "context"

// Logger — минимальный контракт логгера для внешних слоёв.
// Реализация сама добавляет trace_id/span_id/request_id из контекста.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...any) // Debugf — отладка (в т.ч. лог клиента Kafka).
	Infof(ctx context.Context, format string, args ...any)  // Infof — информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf — предупреждения.
	Errorf(ctx context.Context, format string, args ...any) // Errorf — ошибки.
}

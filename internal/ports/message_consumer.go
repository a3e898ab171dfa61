package ports

import "context"

// MessageConsumer — долгоживущий цикл чтения сообщений.
// Run возвращает ошибку, только когда цикл завершён (фатальная ошибка или отмена контекста).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}

// BackgroundTask — периодическая фоновая задача без собственного ресурса для закрытия.
type BackgroundTask interface {
	Run(ctx context.Context) error
}

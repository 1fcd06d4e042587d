package worker

import (
	"context"
)

// Worker - фоновая задача сервиса (чистка сессий, аудит событий)
type Worker interface {
	// Start блокирует до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop останавливает воркер
	Stop() error

	// Name возвращает имя воркера
	Name() string
}

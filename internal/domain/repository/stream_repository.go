package repository

import (
	"context"

	"github.com/safestreets-service/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// ConsumeStream читает новые сообщения из стрима
	ConsumeStream(ctx context.Context, stream, fromID string) (<-chan domain.StreamMessage, error)

	// PublishToStream публикует сообщение в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}

// EventRepository - публикация событий жизненного цикла отчётов
type EventRepository interface {
	Publish(ctx context.Context, event domain.ReportEvent) error
}

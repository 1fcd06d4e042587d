package redis

import (
	"context"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
)

type eventRepository struct {
	streams repository.StreamRepository
	stream  string
}

// NewEventRepository публикует события отчётов в указанный стрим
func NewEventRepository(streams repository.StreamRepository, stream string) repository.EventRepository {
	return &eventRepository{streams: streams, stream: stream}
}

func (r *eventRepository) Publish(ctx context.Context, event domain.ReportEvent) error {
	return r.streams.PublishToStream(ctx, r.stream, event)
}

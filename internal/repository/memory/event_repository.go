package memory

import (
	"context"
	"sync"

	"github.com/safestreets-service/internal/domain"
	"go.uber.org/zap"
)

const defaultEventBacklog = 100

// EventLog хранит последние события в памяти и пишет их в лог.
// Используется вместо Redis Stream, когда Redis выключен.
type EventLog struct {
	mu      sync.Mutex
	events  []domain.ReportEvent
	backlog int
	logger  *zap.Logger
}

func NewEventLog(backlog int, logger *zap.Logger) *EventLog {
	if backlog <= 0 {
		backlog = defaultEventBacklog
	}
	return &EventLog{
		events:  make([]domain.ReportEvent, 0, backlog),
		backlog: backlog,
		logger:  logger,
	}
}

func (l *EventLog) Publish(ctx context.Context, event domain.ReportEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.events) == l.backlog {
		l.events = append(l.events[:0], l.events[1:]...)
	}
	l.events = append(l.events, event)

	l.logger.Debug("Report event recorded",
		zap.String("type", string(event.Type)),
		zap.String("report_id", event.ReportID))
	return nil
}

// Recent возвращает копию накопленных событий, старые первыми
func (l *EventLog) Recent() []domain.ReportEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.ReportEvent, len(l.events))
	copy(out, l.events)
	return out
}

package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
	"github.com/safestreets-service/internal/worker"
	"go.uber.org/zap"
)

// AuditWorker читает стрим событий отчётов и пишет их в журнал
type AuditWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	stream     string
	fromID     string
	processed  atomic.Int64
	skipped    atomic.Int64
}

// NewAuditWorker создает воркер аудита. fromID: "$" - только новые события, "0" - с начала стрима.
func NewAuditWorker(
	streamRepo repository.StreamRepository,
	stream string,
	fromID string,
	logger *zap.Logger,
) *AuditWorker {
	if fromID == "" {
		fromID = "$"
	}
	return &AuditWorker{
		BaseWorker: worker.NewBaseWorker("report-audit", logger),
		streamRepo: streamRepo,
		stream:     stream,
		fromID:     fromID,
	}
}

// Start читает стрим до остановки воркера или отмены ctx
func (w *AuditWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting report audit worker",
		zap.String("stream", w.stream),
		zap.String("from_id", w.fromID))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-w.StopChan():
			cancel()
		case <-ctx.Done():
		}
	}()

	messages, err := w.streamRepo.ConsumeStream(ctx, w.stream, w.fromID)
	if err != nil {
		return fmt.Errorf("failed to consume stream %s: %w", w.stream, err)
	}

	for msg := range messages {
		w.handle(msg)
	}

	if w.IsStopped() {
		logger.Info("Worker stopped")
		return nil
	}
	return ctx.Err()
}

func (w *AuditWorker) handle(msg domain.StreamMessage) {
	var event domain.ReportEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		w.skipped.Add(1)
		w.Logger().Warn("Skipping malformed report event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}

	w.processed.Add(1)
	w.Logger().Info("Report event",
		zap.String("message_id", msg.ID),
		zap.String("type", string(event.Type)),
		zap.String("report_id", event.ReportID),
		zap.String("report_type", string(event.ReportType)),
		zap.Int("upvotes", event.Upvotes),
		zap.String("session_id", event.SessionID),
		zap.Time("occurred_at", event.OccurredAt))
}

// Processed - число успешно разобранных событий
func (w *AuditWorker) Processed() int64 {
	return w.processed.Load()
}

// Skipped - число сообщений, которые не удалось разобрать
func (w *AuditWorker) Skipped() int64 {
	return w.skipped.Load()
}

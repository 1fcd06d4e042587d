package session

import (
	"context"
	"time"

	"github.com/safestreets-service/internal/domain/repository"
	"github.com/safestreets-service/internal/worker"
	"go.uber.org/zap"
)

// Sweeper удаляет сессии, неактивные дольше idleTTL
type Sweeper struct {
	*worker.BaseWorker
	sessionRepo repository.SessionRepository
	idleTTL     time.Duration
	interval    time.Duration
	now         func() time.Time
}

// NewSweeper создает воркер очистки сессий
func NewSweeper(
	sessionRepo repository.SessionRepository,
	idleTTL time.Duration,
	interval time.Duration,
	logger *zap.Logger,
) *Sweeper {
	return &Sweeper{
		BaseWorker:  worker.NewBaseWorker("session-sweeper", logger),
		sessionRepo: sessionRepo,
		idleTTL:     idleTTL,
		interval:    interval,
		now:         time.Now,
	}
}

// Start запускает периодическую очистку
func (w *Sweeper) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting session sweeper",
		zap.Duration("idle_ttl", w.idleTTL),
		zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep выполняет один проход очистки и возвращает число удалённых сессий
func (w *Sweeper) Sweep(ctx context.Context) int {
	removed, err := w.sessionRepo.DeleteIdle(ctx, w.now().Add(-w.idleTTL))
	if err != nil {
		w.Logger().Error("Failed to sweep idle sessions", zap.Error(err))
		return 0
	}
	if removed > 0 {
		w.Logger().Info("Idle sessions removed", zap.Int("count", removed))
	}
	return removed
}

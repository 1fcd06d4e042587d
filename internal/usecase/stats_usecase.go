package usecase

import (
	"context"
	"fmt"

	"github.com/safestreets-service/internal/domain/repository"
	"github.com/safestreets-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// StatsUseCase - счётчики для проверки здоровья
type StatsUseCase struct {
	sessionRepo repository.SessionRepository
	reportRepo  repository.ReportRepository
	logger      *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	sessionRepo repository.SessionRepository,
	reportRepo repository.ReportRepository,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		sessionRepo: sessionRepo,
		reportRepo:  reportRepo,
		logger:      logger,
	}
}

// GetStatistics возвращает число активных сессий и отчётов
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*dto.HealthResponse, error) {
	sessions, err := uc.sessionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	reports, err := uc.reportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	return &dto.HealthResponse{
		Status:   "ok",
		Sessions: sessions,
		Reports:  len(reports),
	}, nil
}

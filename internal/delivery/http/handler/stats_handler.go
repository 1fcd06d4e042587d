package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safestreets-service/internal/pkg/utils"
	"github.com/safestreets-service/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler обрабатывает проверку здоровья сервиса
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Возвращает статус сервиса и число активных сессий и отчётов
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.HealthResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/health [get]
func (h *StatsHandler) Health(c *fiber.Ctx) error {
	ctx := c.Context()

	h.logger.Debug("Handling health request")

	stats, err := h.statsUC.GetStatistics(ctx)
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safestreets-service/internal/delivery/http/middleware"
	"github.com/safestreets-service/internal/pkg/utils"
	"github.com/safestreets-service/internal/usecase"
	"github.com/safestreets-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// ReportHandler - лента и действия над отчётами
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	logger   *zap.Logger
}

// NewReportHandler создает новый экземпляр ReportHandler
func NewReportHandler(reportUC *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

// Feed godoc
// @Summary Лента отчётов
// @Description Карточки отчётов под фильтром сессии, новые первыми
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.FeedResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/feed [get]
func (h *ReportHandler) Feed(c *fiber.Ctx) error {
	feed, err := h.reportUC.Feed(c.Context(), middleware.SessionID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, feed, &utils.Meta{
		Total:   feed.Total,
		Filter:  string(feed.Filter),
		Message: feed.Message,
	})
}

// Submit godoc
// @Summary Новый отчёт
// @Description Списывает один отчёт с лимита. Точка на карте берётся из формы, открытой через "Report Here".
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitReportRequest true "Форма отчёта"
// @Success 201 {object} utils.SuccessResponse{data=dto.ReportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/reports [post]
func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.reportUC.Submit(c.Context(), middleware.SessionID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}

// Upvote godoc
// @Summary Голос за отчёт
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID отчёта"
// @Success 200 {object} utils.SuccessResponse{data=dto.ReportResponse}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/reports/{id}/upvote [post]
func (h *ReportHandler) Upvote(c *fiber.Ctx) error {
	resp, err := h.reportUC.Upvote(c.Context(), middleware.SessionID(c), reportIDParam(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Delete godoc
// @Summary Удаление отчёта
// @Description Без confirm=true возвращает 409 с вопросом подтверждения
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID отчёта"
// @Param confirm query bool false "Подтверждение удаления"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	confirmed := c.QueryBool("confirm", false)

	if err := h.reportUC.Delete(c.Context(), middleware.SessionID(c), reportIDParam(c), confirmed); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

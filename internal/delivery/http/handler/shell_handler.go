package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safestreets-service/internal/delivery/http/middleware"
	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/pkg/utils"
	"github.com/safestreets-service/internal/usecase"
	"github.com/safestreets-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// ShellHandler - состояние оболочки: вкладка, фильтр, форма отчёта
type ShellHandler struct {
	shellUC *usecase.ShellUseCase
	logger  *zap.Logger
}

// NewShellHandler создает новый экземпляр ShellHandler
func NewShellHandler(shellUC *usecase.ShellUseCase, logger *zap.Logger) *ShellHandler {
	return &ShellHandler{
		shellUC: shellUC,
		logger:  logger,
	}
}

// GetState godoc
// @Summary Снапшот оболочки
// @Description Пользователь, лимиты, активная вкладка, фильтр и состояние формы отчёта
// @Tags Shell
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.StateResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/state [get]
func (h *ShellHandler) GetState(c *fiber.Ctx) error {
	state, err := h.shellUC.State(c.Context(), middleware.SessionID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, state, nil)
}

// SelectTab godoc
// @Summary Переключение вкладки
// @Description Уход с вкладки карты сбрасывает сдвиг, масштаб, попап и временную точку
// @Tags Shell
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SelectTabRequest true "Вкладка"
// @Success 200 {object} utils.SuccessResponse{data=dto.StateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/shell/tab [put]
func (h *ShellHandler) SelectTab(c *fiber.Ctx) error {
	var req dto.SelectTabRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.shellUC.SelectTab(c.Context(), middleware.SessionID(c), domain.Tab(req.Tab))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, state, nil)
}

// SelectFilter godoc
// @Summary Фильтр ленты
// @Tags Shell
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SelectFilterRequest true "Фильтр"
// @Success 200 {object} utils.SuccessResponse{data=dto.StateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/shell/filter [put]
func (h *ShellHandler) SelectFilter(c *fiber.Ctx) error {
	var req dto.SelectFilterRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.shellUC.SelectFilter(c.Context(), middleware.SessionID(c), domain.Filter(req.Filter))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, state, nil)
}

// OpenComposer godoc
// @Summary Открыть форму отчёта
// @Tags Shell
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.StateResponse}
// @Router /api/v1/shell/composer [post]
func (h *ShellHandler) OpenComposer(c *fiber.Ctx) error {
	state, err := h.shellUC.OpenComposer(c.Context(), middleware.SessionID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, state, nil)
}

// CloseComposer godoc
// @Summary Закрыть форму отчёта
// @Description Закрывает форму и забывает выбранную на карте точку
// @Tags Shell
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.StateResponse}
// @Router /api/v1/shell/composer [delete]
func (h *ShellHandler) CloseComposer(c *fiber.Ctx) error {
	state, err := h.shellUC.CloseComposer(c.Context(), middleware.SessionID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, state, nil)
}

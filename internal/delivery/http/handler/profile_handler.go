package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safestreets-service/internal/delivery/http/middleware"
	"github.com/safestreets-service/internal/pkg/utils"
	"github.com/safestreets-service/internal/usecase"
	"go.uber.org/zap"
)

// ProfileHandler - экран профиля
type ProfileHandler struct {
	profileUC *usecase.ProfileUseCase
	logger    *zap.Logger
}

// NewProfileHandler создает новый экземпляр ProfileHandler
func NewProfileHandler(profileUC *usecase.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

// GetProfile godoc
// @Summary Профиль
// @Description Имя, контакт, остаток лимитов, статистика и подсказки
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.ProfileResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.profileUC.Profile(c.Context(), middleware.SessionID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, profile, nil)
}

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

// AuthHandler - вход, регистрация и выход
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewAuthHandler создает новый экземпляр AuthHandler
func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Login godoc
// @Summary Вход
// @Description Проверяет формат email или телефона и пароля и открывает сессию с именем "Community Member"
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.AuthRequest true "Форма входа"
// @Success 201 {object} utils.SuccessResponse{data=dto.AuthResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.authenticate(c, domain.ModeLogin)
}

// Signup godoc
// @Summary Регистрация
// @Description Как вход, но требует имя и подтверждение пароля
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.AuthRequest true "Форма регистрации"
// @Success 201 {object} utils.SuccessResponse{data=dto.AuthResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	return h.authenticate(c, domain.ModeSignup)
}

func (h *AuthHandler) authenticate(c *fiber.Ctx, mode domain.AuthMode) error {
	var req dto.AuthRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.authUC.Authenticate(c.Context(), mode, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, resp)
}

// Logout godoc
// @Summary Выход
// @Description Закрывает сессию. Созданные отчёты остаются.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authUC.Logout(c.Context(), middleware.SessionID(c)); err != nil {
		h.logger.Error("Failed to close session", zap.Error(err))
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

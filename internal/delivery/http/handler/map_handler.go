package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safestreets-service/internal/delivery/http/middleware"
	"github.com/safestreets-service/internal/pkg/utils"
	"github.com/safestreets-service/internal/usecase"
	"github.com/safestreets-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapHandler - поверхность карты и её фоновый растр
type MapHandler struct {
	mapUC   *usecase.MapUseCase
	imageUC *usecase.MapImageUseCase
	logger  *zap.Logger
}

// NewMapHandler создает новый экземпляр MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, imageUC *usecase.MapImageUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:   mapUC,
		imageUC: imageUC,
		logger:  logger,
	}
}

// View godoc
// @Summary Состояние карты
// @Description Сдвиг, масштаб, маркеры, открытый попап, временная точка и подпись карты
// @Tags Map
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.MapViewResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/map [get]
func (h *MapHandler) View(c *fiber.Ctx) error {
	view, err := h.mapUC.View(c.Context(), middleware.SessionID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

// Pointer godoc
// @Summary Событие указателя
// @Description down/move/up/leave. Отпускание ближе 5px от точки нажатия ставит временную точку.
// @Tags Map
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PointerRequest true "Событие указателя"
// @Success 200 {object} utils.SuccessResponse{data=dto.PointerResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map/pointer [post]
func (h *MapHandler) Pointer(c *fiber.Ctx) error {
	var req dto.PointerRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.mapUC.Pointer(c.Context(), middleware.SessionID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Zoom godoc
// @Summary Масштаб
// @Description Умножает или делит масштаб на 1.3 в пределах 0.5-3.0
// @Tags Map
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ZoomRequest true "Направление"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapViewResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map/zoom [post]
func (h *MapHandler) Zoom(c *fiber.Ctx) error {
	var req dto.ZoomRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	view, err := h.mapUC.Zoom(c.Context(), middleware.SessionID(c), req.Direction)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

// ToggleMarker godoc
// @Summary Попап маркера
// @Description Открывает попап отчёта или закрывает его, если он уже открыт
// @Tags Map
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID отчёта"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapViewResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/markers/{id}/toggle [post]
func (h *MapHandler) ToggleMarker(c *fiber.Ctx) error {
	view, err := h.mapUC.ToggleMarker(c.Context(), middleware.SessionID(c), reportIDParam(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

// ClosePopup godoc
// @Summary Закрыть попап
// @Tags Map
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.MapViewResponse}
// @Router /api/v1/map/popup [delete]
func (h *MapHandler) ClosePopup(c *fiber.Ctx) error {
	view, err := h.mapUC.ClosePopup(c.Context(), middleware.SessionID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

// CancelCandidate godoc
// @Summary Убрать временную точку
// @Tags Map
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.MapViewResponse}
// @Router /api/v1/map/candidate [delete]
func (h *MapHandler) CancelCandidate(c *fiber.Ctx) error {
	view, err := h.mapUC.CancelCandidate(c.Context(), middleware.SessionID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

// ReportHere godoc
// @Summary Отчёт в выбранной точке
// @Description Открывает форму отчёта с координатами временной точки и убирает точку с карты
// @Tags Map
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.StateResponse}
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/map/candidate/report [post]
func (h *MapHandler) ReportHere(c *fiber.Ctx) error {
	state, err := h.mapUC.ReportHere(c.Context(), middleware.SessionID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, state, nil)
}

// Image godoc
// @Summary Фоновый растр карты
// @Description Растр Mapbox Static Images из кеша либо редирект на запасное изображение
// @Tags Map
// @Produce png
// @Success 200 {file} binary
// @Success 302
// @Router /api/v1/map/image [get]
func (h *MapHandler) Image(c *fiber.Ctx) error {
	img := h.imageUC.GetImage(c.Context())
	if img == nil {
		return c.Redirect(h.imageUC.FallbackURL(), fiber.StatusFound)
	}

	c.Set(fiber.HeaderContentType, img.ContentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(img.Data)
}

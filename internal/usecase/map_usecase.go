package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
	"github.com/safestreets-service/internal/pkg/errors"
	"github.com/safestreets-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapImagePath - маршрут фонового растра карты
const MapImagePath = "/api/v1/map/image"

// MapUseCase - поверхность карты: сдвиг, масштаб, маркеры и выбор точки
type MapUseCase struct {
	sessionRepo repository.SessionRepository
	reportRepo  repository.ReportRepository
	area        string
	logger      *zap.Logger
	now         func() time.Time
}

// NewMapUseCase создает новый экземпляр MapUseCase
func NewMapUseCase(
	sessionRepo repository.SessionRepository,
	reportRepo repository.ReportRepository,
	area string,
	logger *zap.Logger,
) *MapUseCase {
	return &MapUseCase{
		sessionRepo: sessionRepo,
		reportRepo:  reportRepo,
		area:        area,
		logger:      logger,
		now:         time.Now,
	}
}

// View собирает карту для отрисовки. Попап удалённого отчёта считается закрытым.
func (uc *MapUseCase) View(ctx context.Context, sessionID string) (*dto.MapViewResponse, error) {
	session, err := loadSession(ctx, uc.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}

	reports, err := uc.reportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	now := uc.now()
	vp := session.Viewport

	var popup *dto.Popup
	openPopup := ""
	for _, r := range reports {
		if r.ID != vp.OpenPopup {
			continue
		}
		openPopup = r.ID
		popup = &dto.Popup{
			ReportID:     r.ID,
			Type:         r.Type,
			Label:        r.Type.Label(),
			Color:        r.Type.Color(),
			LocationName: r.LocationName,
			Address:      r.Address,
			Description:  r.Description,
			Upvotes:      r.Upvotes,
			Age:          domain.FormatTimeAgo(now, r.Timestamp),
		}
		break
	}

	markers := domain.MarkersFor(reports, openPopup)

	legend := make([]dto.LegendEntry, 0, len(domain.ReportTypes))
	for _, t := range domain.ReportTypes {
		legend = append(legend, dto.LegendEntry{
			Type:  t,
			Label: t.Label(),
			Color: t.Color(),
			Icon:  t.Icon(),
		})
	}

	return &dto.MapViewResponse{
		Pan:         vp.Pan,
		Zoom:        vp.Zoom,
		Dragging:    vp.Dragging,
		Candidate:   vp.Candidate,
		Markers:     markers,
		Popup:       popup,
		Legend:      legend,
		Attribution: fmt.Sprintf("Map data ©%d • %s • %d reports", now.Year(), uc.area, len(markers)),
		ImageURL:    MapImagePath,
	}, nil
}

// Pointer применяет событие указателя к состоянию карты
func (uc *MapUseCase) Pointer(ctx context.Context, sessionID string, req dto.PointerRequest) (*dto.PointerResponse, error) {
	p := domain.ScreenPoint{X: req.X, Y: req.Y}
	var resp dto.PointerResponse

	err := uc.sessionRepo.Update(ctx, sessionID, func(s *domain.Session) error {
		switch req.Phase {
		case "down":
			target := domain.PointerTarget(req.Target)
			if target == "" {
				target = domain.TargetSurface
			}
			s.Viewport.PointerDown(p, target)
		case "move":
			s.Viewport.PointerMove(p)
		case "up":
			var rect domain.Rect
			if req.Rect != nil {
				rect = domain.Rect{
					Left:   req.Rect.Left,
					Top:    req.Rect.Top,
					Width:  req.Rect.Width,
					Height: req.Rect.Height,
				}
			}
			resp.PinPlaced = s.Viewport.PointerUp(p, rect)
		case "leave":
			s.Viewport.PointerLeave()
		default:
			return errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("unknown pointer phase %q", req.Phase))
		}
		resp.Viewport = s.Clone().Viewport
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.PinPlaced {
		uc.logger.Debug("Candidate pin placed",
			zap.String("session_id", sessionID),
			zap.Float64("x", resp.Viewport.Candidate.X),
			zap.Float64("y", resp.Viewport.Candidate.Y))
	}
	return &resp, nil
}

// Zoom меняет масштаб в пределах [MinZoom, MaxZoom]
func (uc *MapUseCase) Zoom(ctx context.Context, sessionID, direction string) (*dto.MapViewResponse, error) {
	err := uc.sessionRepo.Update(ctx, sessionID, func(s *domain.Session) error {
		switch direction {
		case "in":
			s.Viewport.ZoomIn()
		case "out":
			s.Viewport.ZoomOut()
		default:
			return errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("unknown zoom direction %q", direction))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.View(ctx, sessionID)
}

// ToggleMarker открывает или закрывает попап маркера
func (uc *MapUseCase) ToggleMarker(ctx context.Context, sessionID, reportID string) (*dto.MapViewResponse, error) {
	err := uc.sessionRepo.Update(ctx, sessionID, func(s *domain.Session) error {
		exists, err := uc.reportRepo.Exists(ctx, reportID)
		if err != nil {
			return fmt.Errorf("check report: %w", err)
		}
		if !exists {
			return errors.ErrReportNotFound
		}
		s.Viewport.ToggleMarker(reportID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.View(ctx, sessionID)
}

// ClosePopup закрывает открытый попап
func (uc *MapUseCase) ClosePopup(ctx context.Context, sessionID string) (*dto.MapViewResponse, error) {
	err := uc.sessionRepo.Update(ctx, sessionID, func(s *domain.Session) error {
		s.Viewport.ClosePopup()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.View(ctx, sessionID)
}

// CancelCandidate убирает временную точку
func (uc *MapUseCase) CancelCandidate(ctx context.Context, sessionID string) (*dto.MapViewResponse, error) {
	err := uc.sessionRepo.Update(ctx, sessionID, func(s *domain.Session) error {
		s.Viewport.CancelCandidate()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.View(ctx, sessionID)
}

// ReportHere открывает форму отчёта с координатами временной точки
func (uc *MapUseCase) ReportHere(ctx context.Context, sessionID string) (*dto.StateResponse, error) {
	var state dto.StateResponse

	err := uc.sessionRepo.Update(ctx, sessionID, func(s *domain.Session) error {
		candidate, ok := s.Viewport.TakeCandidate()
		if !ok {
			return errors.ErrNoCandidatePin
		}
		s.Shell.OpenComposer(&candidate)
		state = stateOf(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

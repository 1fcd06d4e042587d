package usecase

import (
	"context"
	"fmt"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
	"github.com/safestreets-service/internal/pkg/errors"
	"github.com/safestreets-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	appTitle   = "SafeStreets"
	appTagline = "Community Safety Network"
)

// ShellUseCase - навигация: вкладки, фильтр ленты, форма отчёта
type ShellUseCase struct {
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
}

// NewShellUseCase создает новый экземпляр ShellUseCase
func NewShellUseCase(sessionRepo repository.SessionRepository, logger *zap.Logger) *ShellUseCase {
	return &ShellUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// State возвращает снапшот оболочки
func (uc *ShellUseCase) State(ctx context.Context, sessionID string) (*dto.StateResponse, error) {
	session, err := loadSession(ctx, uc.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	state := stateOf(session)
	return &state, nil
}

// SelectTab переключает вкладку. Уход с карты сбрасывает её состояние.
func (uc *ShellUseCase) SelectTab(ctx context.Context, sessionID string, tab domain.Tab) (*dto.StateResponse, error) {
	if !tab.Valid() {
		return nil, errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("unknown tab %q", tab))
	}
	return uc.update(ctx, sessionID, func(s *domain.Session) error {
		if s.Shell.SelectTab(tab) {
			s.Viewport.Reset()
			uc.logger.Debug("Map view torn down", zap.String("session_id", s.ID))
		}
		return nil
	})
}

// SelectFilter меняет фильтр ленты
func (uc *ShellUseCase) SelectFilter(ctx context.Context, sessionID string, filter domain.Filter) (*dto.StateResponse, error) {
	if !filter.Valid() {
		return nil, errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("unknown filter %q", filter))
	}
	return uc.update(ctx, sessionID, func(s *domain.Session) error {
		s.Shell.Filter = filter
		return nil
	})
}

// OpenComposer открывает форму без выбранной точки (кнопка "+")
func (uc *ShellUseCase) OpenComposer(ctx context.Context, sessionID string) (*dto.StateResponse, error) {
	return uc.update(ctx, sessionID, func(s *domain.Session) error {
		s.Shell.OpenComposer(nil)
		return nil
	})
}

// CloseComposer закрывает форму и забывает выбранную точку
func (uc *ShellUseCase) CloseComposer(ctx context.Context, sessionID string) (*dto.StateResponse, error) {
	return uc.update(ctx, sessionID, func(s *domain.Session) error {
		s.Shell.CloseComposer()
		return nil
	})
}

func (uc *ShellUseCase) update(ctx context.Context, sessionID string, fn func(s *domain.Session) error) (*dto.StateResponse, error) {
	var state dto.StateResponse
	err := uc.sessionRepo.Update(ctx, sessionID, func(s *domain.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		state = stateOf(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// loadSession возвращает копию сессии или ErrSessionNotFound
func loadSession(ctx context.Context, repo repository.SessionRepository, sessionID string) (*domain.Session, error) {
	session, err := repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return nil, errors.ErrSessionNotFound
	}
	return session, nil
}

func stateOf(s *domain.Session) dto.StateResponse {
	composer := s.Shell.Composer
	if composer.Prefill != nil {
		p := *composer.Prefill
		composer.Prefill = &p
	}
	return dto.StateResponse{
		User:      s.User,
		Quota:     s.Quota,
		ActiveTab: s.Shell.ActiveTab,
		Filter:    s.Shell.Filter,
		Composer:  composer,
		Header:    dto.Header{Title: appTitle, Tagline: appTagline},
	}
}

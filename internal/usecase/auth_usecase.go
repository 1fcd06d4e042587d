package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
	"github.com/safestreets-service/internal/pkg/errors"
	"github.com/safestreets-service/internal/pkg/token"
	"github.com/safestreets-service/internal/pkg/validator"
	"github.com/safestreets-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// AuthUseCase - мок-вход: формат полей проверяется, учётные данные нет
type AuthUseCase struct {
	sessionRepo  repository.SessionRepository
	tokens       *token.Issuer
	initialQuota domain.Quota
	logger       *zap.Logger
	now          func() time.Time
}

// NewAuthUseCase создает новый экземпляр AuthUseCase
func NewAuthUseCase(
	sessionRepo repository.SessionRepository,
	tokens *token.Issuer,
	initialQuota domain.Quota,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		sessionRepo:  sessionRepo,
		tokens:       tokens,
		initialQuota: initialQuota,
		logger:       logger,
		now:          time.Now,
	}
}

// Authenticate проверяет форму и открывает новую сессию
func (uc *AuthUseCase) Authenticate(ctx context.Context, mode domain.AuthMode, req dto.AuthRequest) (*dto.AuthResponse, error) {
	if err := validateCredentials(mode, req); err != nil {
		return nil, err
	}

	user := domain.User{
		Name:    domain.DefaultMemberName,
		Channel: domain.AuthChannel(req.Channel),
	}
	if mode == domain.ModeSignup {
		user.Name = strings.TrimSpace(req.Name)
	}
	if user.Channel == domain.ChannelEmail {
		user.Email = req.Email
	} else {
		user.Phone = req.Phone
	}

	now := uc.now()
	session := domain.NewSession(uuid.NewString(), user, uc.initialQuota, now)
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	signed, expiresAt, err := uc.tokens.Issue(session.ID, now)
	if err != nil {
		_ = uc.sessionRepo.Delete(ctx, session.ID)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	uc.logger.Info("Session opened",
		zap.String("session_id", session.ID),
		zap.String("mode", string(mode)),
		zap.String("channel", string(user.Channel)))

	return &dto.AuthResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		State:     stateOf(session),
	}, nil
}

// Logout закрывает сессию; созданные отчёты остаются в хранилище
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	uc.logger.Info("Session closed", zap.String("session_id", sessionID))
	return nil
}

// ResolveToken возвращает id живой сессии по bearer-токену
func (uc *AuthUseCase) ResolveToken(ctx context.Context, bearer string) (string, error) {
	sessionID, err := uc.tokens.SessionID(bearer)
	if err != nil {
		return "", errors.ErrUnauthenticated
	}

	// Любой запрос с токеном продлевает жизнь сессии, даже если он только читает
	if err := uc.sessionRepo.Touch(ctx, sessionID); err != nil {
		if appErr, ok := errors.As(err); ok {
			return "", appErr
		}
		return "", fmt.Errorf("touch session: %w", err)
	}
	return sessionID, nil
}

// validateCredentials проверяет поля по порядку и возвращает первую ошибку
func validateCredentials(mode domain.AuthMode, req dto.AuthRequest) error {
	if mode == domain.ModeSignup && strings.TrimSpace(req.Name) == "" {
		return authError("Please enter your name")
	}

	switch domain.AuthChannel(req.Channel) {
	case domain.ChannelEmail:
		if strings.TrimSpace(req.Email) == "" {
			return authError("Please enter your email address")
		}
		if validator.Var(req.Email, "loose_email") != nil {
			return authError("Please enter a valid email address")
		}
	case domain.ChannelPhone:
		if strings.TrimSpace(req.Phone) == "" {
			return authError("Please enter your phone number")
		}
		if validator.Var(req.Phone, "ph_mobile") != nil {
			return authError("Please enter a valid Philippine phone number (09XXXXXXXXX)")
		}
	default:
		return errors.ErrInvalidRequest
	}

	if req.Password == "" {
		return authError("Please enter your password")
	}
	if validator.Var(req.Password, "min=6") != nil {
		return authError("Password must be at least 6 characters")
	}

	if mode == domain.ModeSignup && req.Password != req.ConfirmPassword {
		return authError("Passwords do not match")
	}
	return nil
}

func authError(message string) error {
	return errors.ErrAuthValidation.WithMessage(message)
}

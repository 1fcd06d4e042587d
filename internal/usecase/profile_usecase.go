package usecase

import (
	"context"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
	"github.com/safestreets-service/internal/usecase/dto"
	"go.uber.org/zap"
)

var profileTips = []string{
	"For reporting: Report locations you find unsafe or concerning",
	"For review: Review reports from the community",
	"Upvote reports to help others in your area",
	"Check the map before your trip for safer routes",
}

// ProfileUseCase - экран профиля
type ProfileUseCase struct {
	sessionRepo  repository.SessionRepository
	initialQuota domain.Quota
	logger       *zap.Logger
}

// NewProfileUseCase создает новый экземпляр ProfileUseCase
func NewProfileUseCase(
	sessionRepo repository.SessionRepository,
	initialQuota domain.Quota,
	logger *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		sessionRepo:  sessionRepo,
		initialQuota: initialQuota,
		logger:       logger,
	}
}

// Profile возвращает данные пользователя и статистику по лимитам.
// Потраченное считается от стартовых лимитов из конфигурации.
func (uc *ProfileUseCase) Profile(ctx context.Context, sessionID string) (*dto.ProfileResponse, error) {
	session, err := loadSession(ctx, uc.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}

	q := session.Quota
	tips := make([]string, len(profileTips))
	copy(tips, profileTips)

	return &dto.ProfileResponse{
		Name:             session.User.Name,
		Email:            session.User.Email,
		Phone:            session.User.Phone,
		ActiveSince:      session.CreatedAt.Format("Jan 2006"),
		Quota:            q,
		ReportsSubmitted: max(uc.initialQuota.ReportsRemaining-q.ReportsRemaining, 0),
		UpvotesGiven:     max(uc.initialQuota.UpvotesRemaining-q.UpvotesRemaining, 0),
		CommunityImpact:  communityImpact(q, uc.initialQuota),
		Tips:             tips,
	}, nil
}

// communityImpact - "High", если любой из счётчиков упал ниже половины стартового
func communityImpact(q, initial domain.Quota) string {
	if q.ReportsRemaining*2 < initial.ReportsRemaining || q.UpvotesRemaining*2 < initial.UpvotesRemaining {
		return "High"
	}
	return "Good"
}

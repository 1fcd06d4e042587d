package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/repository/memory"
	"github.com/safestreets-service/internal/usecase"
)

func TestProfileUseCase_Profile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sessionID := f.signIn(t)

	profile, err := f.profile.Profile(ctx, sessionID)
	require.NoError(t, err)

	assert.Equal(t, "Community Member", profile.Name)
	assert.Equal(t, "member@example.com", profile.Email)
	assert.Equal(t, time.Now().Format("Jan 2006"), profile.ActiveSince)
	assert.Equal(t, 0, profile.ReportsSubmitted)
	assert.Equal(t, 0, profile.UpvotesGiven)
	assert.Equal(t, "Good", profile.CommunityImpact)
	assert.Len(t, profile.Tips, 4)

	for i := 0; i < 2; i++ {
		_, err := f.report.Submit(ctx, sessionID, validSubmission())
		require.NoError(t, err)
	}
	_, err = f.report.Upvote(ctx, sessionID, "1")
	require.NoError(t, err)

	profile, err = f.profile.Profile(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, profile.ReportsSubmitted)
	assert.Equal(t, 1, profile.UpvotesGiven)
	assert.Equal(t, 3, profile.Quota.ReportsRemaining)
	assert.Equal(t, "Good", profile.CommunityImpact)

	_, err = f.report.Submit(ctx, sessionID, validSubmission())
	require.NoError(t, err)

	profile, err = f.profile.Profile(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "High", profile.CommunityImpact)
}

func TestProfileUseCase_StartingQuotaFromConfig(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sessionID := f.signIn(t)

	// Сессия открыта с лимитом 5, а профиль считает от 10
	uc := usecase.NewProfileUseCase(f.sessions, domain.NewQuota(10, 50), zap.NewNop())

	profile, err := uc.Profile(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 5, profile.ReportsSubmitted)
	assert.Equal(t, 45, profile.UpvotesGiven)
	assert.Equal(t, "High", profile.CommunityImpact)

	_, err = usecase.NewProfileUseCase(memory.NewSessionRepository(), testQuota, zap.NewNop()).Profile(ctx, sessionID)
	assert.Error(t, err)
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/safestreets-service/internal/usecase"
)

func TestStatsUseCase_GetStatistics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signIn(t)
	f.signIn(t)

	uc := usecase.NewStatsUseCase(f.sessions, f.reports, zap.NewNop())

	stats, err := uc.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", stats.Status)
	assert.Equal(t, 2, stats.Sessions)
	assert.Equal(t, 7, stats.Reports)
}

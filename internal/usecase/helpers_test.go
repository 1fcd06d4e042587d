package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
	"github.com/safestreets-service/internal/pkg/token"
	"github.com/safestreets-service/internal/repository/memory"
	"github.com/safestreets-service/internal/usecase"
	"github.com/safestreets-service/internal/usecase/dto"
)

// MockEventRepository is a mock of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Publish(ctx context.Context, event domain.ReportEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockMapboxRepository is a mock of MapboxRepository
type MockMapboxRepository struct {
	mock.Mock
}

func (m *MockMapboxRepository) GetStaticImage(ctx context.Context, spec domain.StaticMapSpec) (*domain.StaticImage, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaticImage), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

var (
	testNow      = time.Date(2026, time.February, 12, 9, 0, 0, 0, time.FixedZone("PHT", 8*60*60))
	testCentre   = domain.GeoPoint{Lat: 14.811488, Lng: 120.893985}
	testQuota    = domain.NewQuota(5, 5)
	testImageURL = "https://example.com/placeholder.jpg"
)

type fixture struct {
	sessions repository.SessionRepository
	reports  repository.ReportRepository
	events   *MockEventRepository

	auth    *usecase.AuthUseCase
	report  *usecase.ReportUseCase
	shell   *usecase.ShellUseCase
	mapView *usecase.MapUseCase
	profile *usecase.ProfileUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := zap.NewNop()
	clock := func() time.Time { return testNow }

	f := &fixture{
		sessions: memory.NewSessionRepository(),
		reports:  memory.NewReportRepository(memory.SeedReports()),
		events:   &MockEventRepository{},
	}
	f.events.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	f.auth = usecase.NewAuthUseCase(f.sessions, token.NewIssuer("test-secret", time.Hour), testQuota, logger)
	f.report = usecase.NewReportUseCase(f.sessions, f.reports, f.events, testImageURL, testCentre, logger)
	f.report.SetClock(clock)
	f.shell = usecase.NewShellUseCase(f.sessions, logger)
	f.mapView = usecase.NewMapUseCase(f.sessions, f.reports, "Balagtas, Bulacan", logger)
	f.mapView.SetClock(clock)
	f.profile = usecase.NewProfileUseCase(f.sessions, testQuota, logger)

	return f
}

// signIn открывает сессию через форму входа и возвращает её id
func (f *fixture) signIn(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	resp, err := f.auth.Authenticate(ctx, domain.ModeLogin, dto.AuthRequest{
		Channel:  "email",
		Email:    "member@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	sessionID, err := f.auth.ResolveToken(ctx, resp.Token)
	require.NoError(t, err)
	return sessionID
}

func validSubmission() dto.SubmitReportRequest {
	return dto.SubmitReportRequest{
		Type:         "no-security",
		LocationName: "  Plaza corner ",
		Address:      "Plaza, Balagtas, Bulacan",
		Description:  "Broken CCTV and no guard at night.",
	}
}

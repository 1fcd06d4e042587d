package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/safestreets-service/internal/config"
	httpDelivery "github.com/safestreets-service/internal/delivery/http"
	"github.com/safestreets-service/internal/delivery/http/handler"
	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/pkg/token"
	"github.com/safestreets-service/internal/repository/memory"
	"github.com/safestreets-service/internal/usecase"
)

const fallbackImage = "https://i.imgur.com/ZZRarnG.png"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, Env: "test"},
		CORS:   config.CORSConfig{AllowOrigins: "http://localhost:3000"},
	}

	sessions := memory.NewSessionRepository()
	reports := memory.NewReportRepository(memory.SeedReports())
	quota := domain.NewQuota(5, 5)
	centre := domain.GeoPoint{Lat: 14.811488, Lng: 120.893985}

	authUC := usecase.NewAuthUseCase(sessions, token.NewIssuer("test-secret", time.Hour), quota, logger)
	mapImageUC := usecase.NewMapImageUseCase(nil, memory.NewCacheRepository(), domain.StaticMapSpec{
		Style: "mapbox/streets-v12", Center: centre, Zoom: 16, Width: 800, Height: 1000,
	}, time.Hour, fallbackImage, logger)

	handlers := httpDelivery.Handlers{
		Auth:  handler.NewAuthHandler(authUC, logger),
		Shell: handler.NewShellHandler(usecase.NewShellUseCase(sessions, logger), logger),
		Report: handler.NewReportHandler(
			usecase.NewReportUseCase(sessions, reports, memory.NewEventLog(0, logger), "https://example.com/placeholder.jpg", centre, logger),
			logger,
		),
		Map: handler.NewMapHandler(
			usecase.NewMapUseCase(sessions, reports, "Balagtas, Bulacan", logger),
			mapImageUC,
			logger,
		),
		Profile: handler.NewProfileHandler(usecase.NewProfileUseCase(sessions, quota, logger), logger),
		Stats:   handler.NewStatsHandler(usecase.NewStatsUseCase(sessions, reports, logger), logger),
	}

	return httpDelivery.NewServer(cfg, logger, handlers, authUC).App()
}

func do(t *testing.T, app *fiber.App, method, path, bearer string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()

	status, env := do(t, app, fiber.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"channel":  "email",
		"email":    "member@example.com",
		"password": "secret1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var auth struct {
		Token string `json:"token"`
		State struct {
			User struct {
				Name string `json:"name"`
			} `json:"user"`
			ActiveTab string `json:"active_tab"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)
	assert.Equal(t, "Community Member", auth.State.User.Name)
	assert.Equal(t, "feed", auth.State.ActiveTab)
	return auth.Token
}

func TestServer_Health(t *testing.T) {
	app := newTestApp(t)

	status, env := do(t, app, fiber.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","sessions":0,"reports":7}`, string(env.Data))
}

func TestServer_AuthValidation(t *testing.T) {
	app := newTestApp(t)

	status, env := do(t, app, fiber.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"channel":  "phone",
		"name":     "Ana",
		"phone":    "0917123456",
		"password": "secret1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_VALIDATION", env.Error.Code)
	assert.Equal(t, "Please enter a valid Philippine phone number (09XXXXXXXXX)", env.Error.Message)
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/v1/state", "/api/v1/feed", "/api/v1/map", "/api/v1/profile"} {
		status, env := do(t, app, fiber.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, status, path)
		require.NotNil(t, env.Error, path)
		assert.Equal(t, "UNAUTHENTICATED", env.Error.Code, path)
	}

	status, _ := do(t, app, fiber.MethodGet, "/api/v1/feed", "not-a-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestServer_FeedAndFilter(t *testing.T) {
	app := newTestApp(t)
	bearer := login(t, app)

	status, env := do(t, app, fiber.MethodGet, "/api/v1/feed", bearer, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 7, env.Meta["total"])

	status, _ = do(t, app, fiber.MethodPut, "/api/v1/shell/filter", bearer, map[string]string{"filter": "busy"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, fiber.MethodPut, "/api/v1/shell/filter", bearer, map[string]string{"filter": "dangerous"})
	require.Equal(t, fiber.StatusOK, status)

	_, env = do(t, app, fiber.MethodGet, "/api/v1/feed", bearer, nil)
	assert.Equal(t, "dangerous", env.Meta["filter"])
}

func TestServer_SubmitAndDelete(t *testing.T) {
	app := newTestApp(t)
	bearer := login(t, app)

	status, env := do(t, app, fiber.MethodPost, "/api/v1/reports", bearer, map[string]string{
		"type":          "no-security",
		"location_name": "Plaza corner",
		"address":       "Plaza, Balagtas, Bulacan",
		"description":   "Broken CCTV and no guard at night.",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var created struct {
		Report struct {
			ID string `json:"id"`
		} `json:"report"`
		Quota struct {
			ReportsRemaining int `json:"reports_remaining"`
		} `json:"quota"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 4, created.Quota.ReportsRemaining)

	status, env = do(t, app, fiber.MethodDelete, "/api/v1/reports/"+created.Report.ID, bearer, nil)
	assert.Equal(t, fiber.StatusConflict, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFIRMATION_REQUIRED", env.Error.Code)

	status, _ = do(t, app, fiber.MethodDelete, "/api/v1/reports/"+created.Report.ID+"?confirm=true", bearer, nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, env = do(t, app, fiber.MethodDelete, "/api/v1/reports/"+created.Report.ID+"?confirm=true", bearer, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "REPORT_NOT_FOUND", env.Error.Code)
}

func TestServer_MapPinToComposer(t *testing.T) {
	app := newTestApp(t)
	bearer := login(t, app)

	status, _ := do(t, app, fiber.MethodPost, "/api/v1/map/candidate/report", bearer, nil)
	assert.Equal(t, fiber.StatusConflict, status)

	rect := map[string]float64{"left": 0, "top": 0, "width": 400, "height": 500}
	status, _ = do(t, app, fiber.MethodPost, "/api/v1/map/pointer", bearer, map[string]any{
		"phase": "down", "x": 100, "y": 100, "target": "surface",
	})
	require.Equal(t, fiber.StatusOK, status)

	status, env := do(t, app, fiber.MethodPost, "/api/v1/map/pointer", bearer, map[string]any{
		"phase": "up", "x": 102, "y": 101, "rect": rect,
	})
	require.Equal(t, fiber.StatusOK, status)

	var pointer struct {
		PinPlaced bool `json:"pin_placed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pointer))
	assert.True(t, pointer.PinPlaced)

	status, env = do(t, app, fiber.MethodPost, "/api/v1/map/candidate/report", bearer, nil)
	require.Equal(t, fiber.StatusOK, status)

	var state struct {
		Composer struct {
			Open    bool            `json:"open"`
			Prefill json.RawMessage `json:"prefill"`
		} `json:"composer"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.True(t, state.Composer.Open)
	assert.NotEmpty(t, state.Composer.Prefill)
}

func TestServer_MapImageFallsBack(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/map/image", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fallbackImage, resp.Header.Get(fiber.HeaderLocation))
}

func TestServer_LogoutEndsSession(t *testing.T) {
	app := newTestApp(t)
	bearer := login(t, app)

	status, _ := do(t, app, fiber.MethodPost, "/api/v1/auth/logout", bearer, nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, env := do(t, app, fiber.MethodGet, "/api/v1/state", bearer, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SESSION_NOT_FOUND", env.Error.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	app := newTestApp(t)

	status, env := do(t, app, fiber.MethodGet, "/api/v1/nowhere", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestServer_ValidationErrorNamesFields(t *testing.T) {
	app := newTestApp(t)
	bearer := login(t, app)

	status, env := do(t, app, fiber.MethodPost, "/api/v1/map/zoom", bearer, map[string]string{"direction": "sideways"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	assert.Equal(t, []any{"direction"}, env.Error.Details["fields"])
}

func TestServer_OpenPopupSurvivesOtherRequests(t *testing.T) {
	app := newTestApp(t)
	first := login(t, app)
	second := login(t, app)

	status, _ := do(t, app, fiber.MethodPost, "/api/v1/map/markers/3/toggle", first, nil)
	require.Equal(t, fiber.StatusOK, status)

	// Чужие запросы переиспользуют буферы fiber
	for i := 0; i < 20; i++ {
		status, _ = do(t, app, fiber.MethodPost, "/api/v1/map/markers/7/toggle", second, nil)
		require.Equal(t, fiber.StatusOK, status)
		status, _ = do(t, app, fiber.MethodGet, "/api/v1/feed", second, nil)
		require.Equal(t, fiber.StatusOK, status)
	}

	status, env := do(t, app, fiber.MethodGet, "/api/v1/map", first, nil)
	require.Equal(t, fiber.StatusOK, status)

	var view struct {
		Popup *struct {
			ReportID string `json:"report_id"`
		} `json:"popup"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.NotNil(t, view.Popup)
	assert.Equal(t, "3", view.Popup.ReportID)

	// Upvote тоже берёт id из пути
	status, env = do(t, app, fiber.MethodPost, "/api/v1/reports/3/upvote", first, nil)
	require.Equal(t, fiber.StatusOK, status)

	var upvoted struct {
		Report struct {
			ID string `json:"id"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &upvoted))
	assert.Equal(t, "3", upvoted.Report.ID)
}

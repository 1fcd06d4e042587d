package mapbox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/safestreets-service/internal/config"
	"github.com/safestreets-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_GetStaticImage(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	spec := domain.StaticMapSpec{
		Style:  "mapbox/streets-v12",
		Center: domain.GeoPoint{Lat: 14.811488, Lng: 120.893985},
		Zoom:   16,
		Width:  800,
		Height: 1000,
	}

	t.Run("successful request", func(t *testing.T) {
		png := []byte("\x89PNG\r\n\x1a\nfake-image")

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/styles/v1/mapbox/streets-v12/static/120.893985,14.811488,16/800x1000", r.URL.Path)
			assert.Equal(t, "test_token", r.URL.Query().Get("access_token"))

			w.Header().Set("Content-Type", "image/png")
			w.WriteHeader(http.StatusOK)
			w.Write(png)
		}))
		defer server.Close()

		cfg := &config.MapboxConfig{
			AccessToken:    "test_token",
			BaseURL:        server.URL,
			RequestTimeout: 30,
		}

		client := NewMapboxClient(cfg, logger)

		result, err := client.GetStaticImage(context.Background(), spec)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "image/png", result.ContentType)
		assert.Equal(t, png, result.Data)
	})

	t.Run("detects content type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header()["Content-Type"] = nil
			w.Write([]byte("\x89PNG\r\n\x1a\n0000"))
		}))
		defer server.Close()

		client := NewMapboxClient(&config.MapboxConfig{AccessToken: "t", BaseURL: server.URL, RequestTimeout: 5}, logger)

		result, err := client.GetStaticImage(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, "image/png", result.ContentType)
	})

	t.Run("invalid size", func(t *testing.T) {
		client := NewMapboxClient(&config.MapboxConfig{
			AccessToken:    "test_token",
			BaseURL:        "https://api.mapbox.com",
			RequestTimeout: 30,
		}, logger)

		bad := spec
		bad.Width = 0

		result, err := client.GetStaticImage(context.Background(), bad)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "invalid image size")
	})

	t.Run("exceeds mapbox limit", func(t *testing.T) {
		client := NewMapboxClient(&config.MapboxConfig{
			AccessToken:    "test_token",
			BaseURL:        "https://api.mapbox.com",
			RequestTimeout: 30,
		}, logger)

		bad := spec
		bad.Height = 2000

		result, err := client.GetStaticImage(context.Background(), bad)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "exceeds Mapbox limit")
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Not Authorized - Invalid Token"}`))
		}))
		defer server.Close()

		cfg := &config.MapboxConfig{
			AccessToken:    "bad_token",
			BaseURL:        server.URL,
			RequestTimeout: 30,
		}

		client := NewMapboxClient(cfg, logger)

		result, err := client.GetStaticImage(context.Background(), spec)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "mapbox API error")
	})
}

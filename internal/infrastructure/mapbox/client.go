package mapbox

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/safestreets-service/internal/config"
	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
	"go.uber.org/zap"
)

// maxImageBytes - ограничение размера ответа Static Images API
const maxImageBytes = 8 << 20

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *zap.Logger
}

// NewMapboxClient создает новый клиент для Mapbox API
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger) repository.MapboxRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		logger:      logger,
	}
}

// GetStaticImage загружает растр карты через Static Images API
func (c *client) GetStaticImage(ctx context.Context, spec domain.StaticMapSpec) (*domain.StaticImage, error) {
	if spec.Style == "" {
		return nil, fmt.Errorf("map style cannot be empty")
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", spec.Width, spec.Height)
	}
	// Static Images API принимает стороны до 1280 пикселей
	if spec.Width > 1280 || spec.Height > 1280 {
		return nil, fmt.Errorf("image size %dx%d exceeds Mapbox limit of 1280", spec.Width, spec.Height)
	}

	requestURL := fmt.Sprintf(
		"%s/styles/v1/%s/static/%f,%f,%g/%dx%d?access_token=%s",
		c.baseURL,
		spec.Style,
		spec.Center.Lng, spec.Center.Lat, spec.Zoom,
		spec.Width, spec.Height,
		url.QueryEscape(c.accessToken),
	)

	c.logger.Debug("Calling Mapbox Static Images API",
		zap.String("style", spec.Style),
		zap.Float64("lat", spec.Center.Lat),
		zap.Float64("lng", spec.Center.Lng),
		zap.Float64("zoom", spec.Zoom))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("mapbox API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		c.logger.Error("Failed to read response", zap.Error(err))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("mapbox API returned empty image")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	c.logger.Debug("Mapbox Static Images API call successful",
		zap.Int("bytes", len(data)),
		zap.String("content_type", contentType))

	return &domain.StaticImage{Data: data, ContentType: contentType}, nil
}

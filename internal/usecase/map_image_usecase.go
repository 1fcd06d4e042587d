package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
	"go.uber.org/zap"
)

// MapImageUseCase отдаёт фоновый растр карты: кеш, затем Mapbox.
// Если растр получить нельзя, клиент уходит на запасной URL.
type MapImageUseCase struct {
	mapboxRepo  repository.MapboxRepository
	cacheRepo   repository.CacheRepository
	spec        domain.StaticMapSpec
	cacheTTL    time.Duration
	fallbackURL string
	logger      *zap.Logger
}

// NewMapImageUseCase создает новый экземпляр MapImageUseCase.
// mapboxRepo nil означает, что токен Mapbox не настроен.
func NewMapImageUseCase(
	mapboxRepo repository.MapboxRepository,
	cacheRepo repository.CacheRepository,
	spec domain.StaticMapSpec,
	cacheTTL time.Duration,
	fallbackURL string,
	logger *zap.Logger,
) *MapImageUseCase {
	return &MapImageUseCase{
		mapboxRepo:  mapboxRepo,
		cacheRepo:   cacheRepo,
		spec:        spec,
		cacheTTL:    cacheTTL,
		fallbackURL: fallbackURL,
		logger:      logger,
	}
}

// FallbackURL - запасной статичный растр
func (uc *MapImageUseCase) FallbackURL() string {
	return uc.fallbackURL
}

// GetImage возвращает растр карты или nil, если нужно отдать запасной URL
func (uc *MapImageUseCase) GetImage(ctx context.Context) *domain.StaticImage {
	if uc.mapboxRepo == nil {
		return nil
	}

	key := uc.spec.CacheKey()

	// 1. Проверяем кеш
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.Get(ctx, key)
		if err != nil {
			uc.logger.Warn("Failed to get map image from cache", zap.Error(err))
		} else if cached != nil {
			var img domain.StaticImage
			if err := json.Unmarshal(cached, &img); err == nil && len(img.Data) > 0 {
				uc.logger.Debug("Map image fetched from cache")
				return &img
			}
			uc.logger.Warn("Discarding corrupt cached map image", zap.String("key", key))
		}
	}

	// 2. Запрашиваем Mapbox
	img, err := uc.mapboxRepo.GetStaticImage(ctx, uc.spec)
	if err != nil {
		uc.logger.Warn("Failed to fetch map image, using fallback", zap.Error(err))
		return nil
	}

	// 3. Кешируем
	if uc.cacheRepo != nil {
		data, err := json.Marshal(img)
		if err == nil {
			err = uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL)
		}
		if err != nil {
			uc.logger.Warn("Failed to cache map image", zap.Error(err))
		}
	}

	return img
}

package repository

import (
	"context"

	"github.com/safestreets-service/internal/domain"
)

// MapboxRepository определяет методы для работы с Mapbox API
type MapboxRepository interface {
	// GetStaticImage загружает растр карты по параметрам Static Images API
	GetStaticImage(ctx context.Context, spec domain.StaticMapSpec) (*domain.StaticImage, error)
}

package repository

import (
	"context"
	"time"
)

// CacheRepository - кеш байтовых значений с TTL (растр карты).
// Ошибки кеша не должны ломать пользовательский запрос: вызывающий логирует их и идёт дальше.
type CacheRepository interface {
	// Get возвращает nil, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/safestreets-service/internal/domain/repository"
)

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// cacheRepository - кеш в памяти на случай, когда Redis выключен
type cacheRepository struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewCacheRepository() repository.CacheRepository {
	return &cacheRepository{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(key)
	if !ok {
		return nil, nil // Cache miss
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := cacheEntry{value: make([]byte, len(value))}
	copy(e.value, value)
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
	}
	r.entries[key] = e
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, key)
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.lookup(key)
	return ok, nil
}

// lookup возвращает живую запись и вычищает просроченную
func (r *cacheRepository) lookup(key string) (cacheEntry, bool) {
	e, ok := r.entries[key]
	if !ok {
		return cacheEntry{}, false
	}
	if !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt) {
		delete(r.entries, key)
		return cacheEntry{}, false
	}
	return e, true
}

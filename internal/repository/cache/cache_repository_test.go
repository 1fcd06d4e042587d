package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	return client
}

func TestCacheRepository_RoundTrip(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := newCacheRepository(client, zap.NewNop())
	ctx := context.Background()
	key := "test:map:image"

	defer client.Del(ctx, keyPrefix+key)

	miss, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, repo.Set(ctx, key, []byte{0x89, 'P', 'N', 'G'}, time.Minute))

	got, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, got)

	// Ключ в Redis лежит под префиксом сервиса
	raw, err := client.Get(ctx, keyPrefix+key).Bytes()
	require.NoError(t, err)
	assert.Equal(t, got, raw)

	exists, err := repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, key))
	exists, err = repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

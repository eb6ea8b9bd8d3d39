package caching

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T) (*RedisCachingService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCachingService(client), mr
}

func TestRedisCachingService(t *testing.T) {
	ctx := context.Background()
	cache, mr := newRedisCache(t)

	_, err := cache.Get(ctx, "user:files:u1")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "user:files:u1", []byte(`[]`), time.Minute))
	got, err := cache.Get(ctx, "user:files:u1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	mr.FastForward(2 * time.Minute)
	_, err = cache.Get(ctx, "user:files:u1")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, cache.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))
	require.NoError(t, cache.Delete(ctx))

	require.NoError(t, cache.IsReady(ctx))
}

func TestRedisCachingServiceUnavailable(t *testing.T) {
	cache, mr := newRedisCache(t)
	mr.Close()

	_, err := cache.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestNullCachingService(t *testing.T) {
	ctx := context.Background()
	cache := NewNullCachingService()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	_, err := cache.Get(ctx, "k")
	require.ErrorIs(t, err, ErrCacheMiss)
	require.NoError(t, cache.Delete(ctx, "k"))
}

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_AllowWithinLimit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		result, err := store.Allow(ctx, "provider:mock_provider_1", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i+1)
	}
}

func TestRateLimitStore_BlocksOverLimit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Allow(ctx, "provider:veriff", 3, time.Minute)
		require.NoError(t, err)
	}

	result, err := store.Allow(ctx, "provider:veriff", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(0), result.Remaining)
}

func TestRateLimitStore_RemainingCountsDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	result, err := store.Allow(ctx, "k", 10, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(9), result.Remaining)

	result, err = store.Allow(ctx, "k", 10, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(8), result.Remaining)
}

func TestRateLimitStore_SeparateKeys(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	_, err := store.Allow(ctx, "a", 1, time.Minute)
	require.NoError(t, err)

	blocked, err := store.Allow(ctx, "a", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	other, err := store.Allow(ctx, "b", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

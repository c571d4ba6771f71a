package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()
	policy := Policy{Limit: 5, Window: time.Minute}

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "203.0.113.7", policy)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "203.0.113.7", policy)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "198.51.100.1", policy)
	require.NoError(t, err)
	assert.True(t, allowed, "keys are independent")
}

func TestRedisRateLimiter_GetRemainingAndReset(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()
	policy := Policy{Limit: 3, Window: time.Minute}

	_, err := limiter.Allow(ctx, "client", policy)
	require.NoError(t, err)

	remaining, err := limiter.GetRemaining(ctx, "client", policy)
	require.NoError(t, err)
	assert.Equal(t, int64(2), remaining)

	require.NoError(t, limiter.Reset(ctx, "client"))
	remaining, err = limiter.GetRemaining(ctx, "client", policy)
	require.NoError(t, err)
	assert.Equal(t, int64(3), remaining)
}

func TestRedisRateLimiter_SlidingWindow(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()
	policy := Policy{Limit: 1, Window: 500 * time.Millisecond}

	allowed, err := limiter.Allow(ctx, "slide", policy)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "slide", policy)
	require.NoError(t, err)
	assert.False(t, allowed)

	time.Sleep(600 * time.Millisecond)
	allowed, err = limiter.Allow(ctx, "slide", policy)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestPolicy_Disabled(t *testing.T) {
	assert.False(t, Policy{}.Enabled())
	assert.False(t, Policy{Limit: 5}.Enabled())

	// a nil client is never touched when the policy is disabled
	limiter := NewRedisRateLimiter(nil)
	allowed, err := limiter.Allow(context.Background(), "any", Policy{})
	require.NoError(t, err)
	assert.True(t, allowed)
}

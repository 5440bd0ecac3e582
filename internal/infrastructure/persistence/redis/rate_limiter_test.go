package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitsun-api/internal/config"
)

const testKey = "fitsun:ratelimit:10.0.0.1:/api/generate-workout"

func newTestLimiter(t *testing.T) (*RateLimiter, *miniredis.Miniredis, *time.Time) {
	t.Helper()
	mr := miniredis.RunT(t)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	client, err := NewClient(context.Background(), &config.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(client)
	l.now = func() time.Time { return now }
	return l, mr, &now
}

func TestAllowCountsDownThenDenies(t *testing.T) {
	l, mr, _ := newTestLimiter(t)
	ctx := context.Background()

	for want := 2; want >= 0; want-- {
		allowed, remaining, err := l.Allow(ctx, testKey, 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, want, remaining)
	}

	allowed, remaining, err := l.Allow(ctx, testKey, 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Zero(t, remaining)

	members, err := mr.ZMembers(testKey)
	require.NoError(t, err)
	assert.Len(t, members, 3)
	assert.Equal(t, 2*time.Minute, mr.TTL(testKey))
}

func TestAllowSameMillisecondUsesDistinctMembers(t *testing.T) {
	l, mr, _ := newTestLimiter(t)

	for i := 0; i < 2; i++ {
		allowed, _, err := l.Allow(context.Background(), testKey, 5, time.Minute)
		require.NoError(t, err)
		require.True(t, allowed)
	}

	members, err := mr.ZMembers(testKey)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.NotEqual(t, members[0], members[1])
}

func TestAllowWindowSlides(t *testing.T) {
	l, _, now := newTestLimiter(t)
	ctx := context.Background()

	allowed, _, err := l.Allow(ctx, testKey, 2, time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)

	*now = now.Add(30 * time.Second)
	allowed, _, err = l.Allow(ctx, testKey, 2, time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, _, err = l.Allow(ctx, testKey, 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// 第一条记录滑出窗口，释放一个配额
	*now = now.Add(31 * time.Second)
	allowed, remaining, err := l.Allow(ctx, testKey, 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, remaining)
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l, _, _ := newTestLimiter(t)
	ctx := context.Background()

	allowed, _, err := l.Allow(ctx, testKey, 1, time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, _, err = l.Allow(ctx, "fitsun:ratelimit:10.0.0.2:/api/generate-workout", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllowReturnsErrorWhenRedisDown(t *testing.T) {
	l, mr, _ := newTestLimiter(t)
	mr.Close()

	allowed, _, err := l.Allow(context.Background(), testKey, 1, time.Minute)
	assert.Error(t, err)
	assert.False(t, allowed)
}

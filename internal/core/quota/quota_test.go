package quota

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int64) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLimiter(client, limit, time.UTC), mr
}

func TestRedisLimiterEnforcesDailyLimit(t *testing.T) {
	limiter, mr := newLimiter(t, 2)
	day := time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)
	limiter.SetClock(func() time.Time { return day })
	owner := uuid.New()
	ctx := context.Background()

	d, err := limiter.Allow(ctx, owner)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, int64(1), d.Remaining)

	d, err = limiter.Allow(ctx, owner)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	d, err = limiter.Allow(ctx, owner)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, int64(0), d.Remaining)

	// other owners are counted separately
	d, err = limiter.Allow(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	assert.True(t, mr.TTL("ai_quota:"+owner.String()+":2026-10-18") > 0)

	// a new day starts a new counter
	limiter.SetClock(func() time.Time { return day.AddDate(0, 0, 1) })
	d, err = limiter.Allow(ctx, owner)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisLimiterDisabled(t *testing.T) {
	limiter, _ := newLimiter(t, 0)
	d, err := limiter.Allow(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestNoop(t *testing.T) {
	d, err := Noop{}.Allow(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

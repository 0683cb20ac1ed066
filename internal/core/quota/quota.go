// Package quota caps how many AI requests an owner can make per day.
package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Limiter admits or rejects one unit of usage for an owner
type Limiter interface {
	Allow(ctx context.Context, ownerID uuid.UUID) (Decision, error)
}

// Decision reports the outcome of Allow
type Decision struct {
	Allowed   bool
	Used      int64
	Limit     int64
	Remaining int64
}

// NewRedisClient parses a redis:// URL and checks the server is reachable
func NewRedisClient(rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// RedisLimiter counts usage per owner per calendar day in loc
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	loc    *time.Location
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, limit int64, loc *time.Location) *RedisLimiter {
	if loc == nil {
		loc = time.Local
	}
	return &RedisLimiter{client: client, limit: limit, loc: loc, now: time.Now}
}

// SetClock overrides the day boundary source
func (l *RedisLimiter) SetClock(now func() time.Time) {
	l.now = now
}

func (l *RedisLimiter) key(ownerID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("ai_quota:%s:%s", ownerID, day.Format("2006-01-02"))
}

// Allow increments today's counter and admits the request while it stays within the limit.
// A limit of zero or less disables the check.
func (l *RedisLimiter) Allow(ctx context.Context, ownerID uuid.UUID) (Decision, error) {
	if l.limit <= 0 {
		return Decision{Allowed: true}, nil
	}

	key := l.key(ownerID, l.now().In(l.loc))

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, 48*time.Hour)
		return nil
	})
	if err != nil {
		return Decision{}, fmt.Errorf("failed to update ai quota in redis: %w", err)
	}

	used := incr.Val()
	remaining := l.limit - used
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   used <= l.limit,
		Used:      used,
		Limit:     l.limit,
		Remaining: remaining,
	}, nil
}

// Noop admits everything; used when Redis is not configured
type Noop struct{}

func (Noop) Allow(ctx context.Context, ownerID uuid.UUID) (Decision, error) {
	return Decision{Allowed: true}, nil
}

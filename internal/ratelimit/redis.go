package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a redis-backed limiter for multi-instance deployments.
// The window is approximated with a TTL'd counter per key; the spacing
// guard uses a short-lived marker key. Both expire on their own, so no
// sweep is needed.
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
}

// NewRedisLimiter creates a redis-backed limiter with the given thresholds.
func NewRedisLimiter(client *redis.Client, cfg Config) *RedisLimiter {
	return &RedisLimiter{client: client, cfg: cfg}
}

func (l *RedisLimiter) countKey(key string) string {
	return "ratelimit:count:" + key
}

func (l *RedisLimiter) spacingKey(key string) string {
	return "ratelimit:last:" + key
}

// Allow checks and records an attempt for the given key.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	// Spacing guard first, matching the in-memory limiter.
	ttl, err := l.client.PTTL(ctx, l.spacingKey(key)).Result()
	if err != nil {
		return Allowed, fmt.Errorf("rate limit spacing check failed: %w", err)
	}
	if ttl > 0 {
		return DeniedTooFrequent, nil
	}

	count, err := l.client.Get(ctx, l.countKey(key)).Int()
	if err != nil && err != redis.Nil {
		return Allowed, fmt.Errorf("rate limit quota check failed: %w", err)
	}
	if count >= l.cfg.MaxAttempts {
		return DeniedQuotaExhausted, nil
	}

	// Record the attempt. Denied checks above never reach this point, so
	// rejections do not consume quota or reset the spacing marker.
	if err := l.client.Set(ctx, l.spacingKey(key), 1, l.cfg.MinInterval).Err(); err != nil {
		return Allowed, fmt.Errorf("rate limit spacing update failed: %w", err)
	}
	newCount, err := l.client.Incr(ctx, l.countKey(key)).Result()
	if err != nil {
		return Allowed, fmt.Errorf("rate limit quota update failed: %w", err)
	}
	if newCount == 1 {
		if err := l.client.Expire(ctx, l.countKey(key), l.cfg.Window).Err(); err != nil {
			return Allowed, fmt.Errorf("rate limit window expiry failed: %w", err)
		}
	}

	return Allowed, nil
}

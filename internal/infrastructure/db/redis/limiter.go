package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AttemptLimiter counts attempts per key in fixed windows shared by every
// API instance.
// Key format: ratelimit:<scope>:<key>
type AttemptLimiter struct {
	client *redis.Client
	scope  string
	limit  int64
	window time.Duration
}

// NewAttemptLimiter allows limit attempts per key within each window.
func NewAttemptLimiter(client *redis.Client, scope string, limit int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{client: client, scope: scope, limit: int64(limit), window: window}
}

// Allow records one attempt for key and reports whether it is within the
// limit. retryAfter is the time left in the current window when denied.
func (l *AttemptLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := l.key(key)

	var count *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := l.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		count = p.Incr(ctx, k)
		ttl = p.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("rate limit incr: %w", err)
	}

	remaining := ttl.Val()
	if remaining < 0 {
		// First hit in this window (or the key lost its TTL).
		if err := l.client.PExpire(ctx, k, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("rate limit expire: %w", err)
		}
		remaining = l.window
	}

	if count.Val() > l.limit {
		return false, remaining, nil
	}
	return true, 0, nil
}

func (l *AttemptLimiter) key(key string) string {
	return fmt.Sprintf("ratelimit:%s:%s", l.scope, key)
}

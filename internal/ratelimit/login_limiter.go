package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// LoginLimiter caps login attempts per email and client IP over a fixed
// window, backed by redis INCR/EXPIRE. A nil limiter or a redis failure
// allows the attempt: authentication never depends on redis being up.
type LoginLimiter struct {
	rdb    *redis.Client
	max    int64
	window time.Duration
}

func NewLoginLimiter(rdb *redis.Client, max int64, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		rdb:    rdb,
		max:    max,
		window: window,
	}
}

func (l *LoginLimiter) Allow(ctx context.Context, email, ip string) bool {
	if l == nil || l.rdb == nil {
		return true
	}

	key := fmt.Sprintf("login_attempts:%s:%s", email, ip)

	n, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return true
	}
	if n == 1 {
		// Without an expiry the counter would lock the pair out forever;
		// drop the key and let the attempt through.
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			l.rdb.Del(ctx, key)
			return true
		}
	}

	return n <= l.max
}

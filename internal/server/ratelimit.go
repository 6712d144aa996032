// internal/server/ratelimit.go
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/logger"
)

// Limiter bounds submissions per client address. Allow reports whether the
// client may proceed; a non-nil error means the limiter backend itself failed.
type Limiter interface {
	Allow(ctx context.Context, clientAddr string) (bool, error)
}

// RedisLimiter implements a fixed one-minute window with INCR + EXPIRE,
// shared across server replicas.
type RedisLimiter struct {
	client    *redis.Client
	perMinute int
	window    time.Duration
}

// NewRedisLimiter creates a Redis-backed limiter.
func NewRedisLimiter(client *redis.Client, perMinute int) *RedisLimiter {
	return &RedisLimiter{
		client:    client,
		perMinute: perMinute,
		window:    time.Minute,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, clientAddr string) (bool, error) {
	key := fmt.Sprintf("ratelimit:submission:%s", clientAddr)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First hit opens the window.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.perMinute), nil
}

// LocalLimiter is the in-process fallback used when Redis is not configured.
// Each client address gets its own token bucket refilling at the configured
// per-minute rate.
type LocalLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*rate.Limiter
	perMinute int
}

// NewLocalLimiter creates an in-memory limiter.
func NewLocalLimiter(perMinute int) *LocalLimiter {
	return &LocalLimiter{
		buckets:   make(map[string]*rate.Limiter),
		perMinute: perMinute,
	}
}

func (l *LocalLimiter) Allow(ctx context.Context, clientAddr string) (bool, error) {
	l.mu.Lock()
	bucket, ok := l.buckets[clientAddr]
	if !ok {
		bucket = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute)
		l.buckets[clientAddr] = bucket
	}
	l.mu.Unlock()
	return bucket.Allow(), nil
}

// failOpenLimiter wraps another limiter and lets traffic through when the
// backend errors. A Redis outage must not take submissions down with it.
type failOpenLimiter struct {
	inner  Limiter
	logger logger.Logger
}

// NewFailOpenLimiter wraps a limiter with fail-open behavior.
func NewFailOpenLimiter(inner Limiter, log logger.Logger) Limiter {
	return &failOpenLimiter{inner: inner, logger: log}
}

func (l *failOpenLimiter) Allow(ctx context.Context, clientAddr string) (bool, error) {
	allowed, err := l.inner.Allow(ctx, clientAddr)
	if err != nil {
		l.logger.WithError(err).Warn("Rate limiter backend unavailable, allowing request", nil)
		return true, nil
	}
	return allowed, nil
}

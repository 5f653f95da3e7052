// Package ratelimit throttles login attempts with fixed windows kept in Redis.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/carlisting-server/internal/logger"
	"github.com/dtroode/carlisting-server/internal/model"
)

const (
	emailKeyPrefix = "login:email:"
	ipKeyPrefix    = "login:ip:"
)

var (
	_ model.LoginLimiter = (*RedisLoginLimiter)(nil)
	_ model.LoginLimiter = Noop{}
)

// RedisLoginLimiter counts attempts per email and failed attempts per client
// address. Each counter expires window after its first increment. When Redis
// is unavailable attempts are let through.
type RedisLoginLimiter struct {
	redis       *redis.Client
	maxAttempts int64
	window      time.Duration
	logger      *logger.Logger
}

func NewRedisLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration, logger *logger.Logger) *RedisLoginLimiter {
	return &RedisLoginLimiter{
		redis:       client,
		maxAttempts: int64(maxAttempts),
		window:      window,
		logger:      logger,
	}
}

// Enforce records an attempt for email and returns model.ErrRateLimited once
// the email counter goes over the limit or clientIP has already used up its
// failed attempts.
func (l *RedisLoginLimiter) Enforce(ctx context.Context, email, clientIP string) error {
	count, err := l.increment(ctx, emailKeyPrefix+email)
	if err != nil {
		l.logger.Warn("Login limiter: redis unavailable, allowing attempt", "error", err)
		return nil
	}
	if count > l.maxAttempts {
		return model.ErrRateLimited
	}

	if clientIP == "" {
		return nil
	}
	failures, err := l.redis.Get(ctx, ipKeyPrefix+clientIP).Int64()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		l.logger.Warn("Login limiter: redis unavailable, allowing attempt", "error", err)
		return nil
	}
	if failures >= l.maxAttempts {
		return model.ErrRateLimited
	}

	return nil
}

// RecordFailure counts a failed login from clientIP. Successful logins never
// touch the address counter.
func (l *RedisLoginLimiter) RecordFailure(ctx context.Context, clientIP string) error {
	if clientIP == "" {
		return nil
	}
	if _, err := l.increment(ctx, ipKeyPrefix+clientIP); err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}
	return nil
}

// Reset clears the email counter after a successful login.
func (l *RedisLoginLimiter) Reset(ctx context.Context, email string) error {
	if err := l.redis.Del(ctx, emailKeyPrefix+email).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}

func (l *RedisLoginLimiter) increment(ctx context.Context, key string) (int64, error) {
	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}
	if count == 1 {
		if err := l.redis.Expire(ctx, key, l.window).Err(); err != nil {
			return 0, fmt.Errorf("failed to set expiry on %s: %w", key, err)
		}
	}
	return count, nil
}

// Noop never throttles. It is used when no Redis address is configured.
type Noop struct{}

func (Noop) Enforce(context.Context, string, string) error { return nil }

func (Noop) RecordFailure(context.Context, string) error { return nil }

func (Noop) Reset(context.Context, string) error { return nil }

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/go-redis/redis/v8"
)

const (
	ViolationsKeyPattern = "authguard:violations:%s"
	DefaultViolationTTL  = 24 * time.Hour
)

// RedisViolationCounter counts breach episodes. Every increment re-arms the
// expiry, so the counter decays only after a quiet period.
type RedisViolationCounter struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisViolationCounter(redisClient *redis.Client, ttl time.Duration) guard.ViolationCounter {
	if ttl <= 0 {
		ttl = DefaultViolationTTL
	}
	return &RedisViolationCounter{redis: redisClient, ttl: ttl}
}

func ViolationsKey(scope guard.Scope) string {
	return fmt.Sprintf(ViolationsKeyPattern, scope.Key())
}

func (c *RedisViolationCounter) IncrementAndGet(ctx context.Context, scope guard.Scope) (int, error) {
	key := ViolationsKey(scope)

	pipe := c.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, c.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("%w: increment violations: %v", guard.ErrStoreUnavailable, err)
	}
	return int(incr.Val()), nil
}

func (c *RedisViolationCounter) GetViolations(ctx context.Context, scope guard.Scope) (int, error) {
	count, err := c.redis.Get(ctx, ViolationsKey(scope)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: get violations: %v", guard.ErrStoreUnavailable, err)
	}
	if count < 0 {
		return 0, nil
	}
	return int(count), nil
}

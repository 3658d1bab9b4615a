package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/go-redis/redis/v8"
)

const (
	LockoutKeyPattern = "authguard:lockout:%s"
)

type RedisLockoutStore struct {
	redis *redis.Client
}

func NewRedisLockoutStore(redisClient *redis.Client) guard.LockoutStore {
	return &RedisLockoutStore{redis: redisClient}
}

func LockoutKey(scope guard.Scope) string {
	return fmt.Sprintf(LockoutKeyPattern, scope.Key())
}

func (s *RedisLockoutStore) GetLockout(
	ctx context.Context,
	scope guard.Scope,
	now time.Time,
) (time.Time, bool, error) {
	raw, err := s.redis.Get(ctx, LockoutKey(scope)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("%w: get lockout: %v", guard.ErrStoreUnavailable, err)
	}
	expiresAt := time.UnixMilli(raw).UTC()
	if !expiresAt.After(now) {
		return time.Time{}, false, nil
	}
	return expiresAt, true, nil
}

// SetLockout overwrites any existing marker; the latest expiry wins.
func (s *RedisLockoutStore) SetLockout(
	ctx context.Context,
	scope guard.Scope,
	expiresAt time.Time,
	now time.Time,
) error {
	ttl := expiresAt.Sub(now)
	if ttl <= 0 {
		return nil
	}
	value := strconv.FormatInt(expiresAt.UnixMilli(), 10)
	if err := s.redis.Set(ctx, LockoutKey(scope), value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set lockout: %v", guard.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisLockoutStore) ClearLockout(ctx context.Context, scope guard.Scope) error {
	if err := s.redis.Del(ctx, LockoutKey(scope)).Err(); err != nil {
		return fmt.Errorf("%w: clear lockout: %v", guard.ErrStoreUnavailable, err)
	}
	return nil
}

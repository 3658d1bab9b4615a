package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	FailuresKeyPattern = "authguard:failures:%s"
)

type FailureStoreOpts struct {
	UuidProvider func() uuid.UUID
}

// RedisFailureStore keeps one sorted set per scope. Members are unique per
// event and scored by the event time in milliseconds.
type RedisFailureStore struct {
	redis        *redis.Client
	uuidProvider func() uuid.UUID
}

func NewRedisFailureStore(redisClient *redis.Client, opts *FailureStoreOpts) guard.FailureStore {
	uuidProvider := uuid.New
	if opts != nil && opts.UuidProvider != nil {
		uuidProvider = opts.UuidProvider
	}
	return &RedisFailureStore{
		redis:        redisClient,
		uuidProvider: uuidProvider,
	}
}

func FailuresKey(scope guard.Scope) string {
	return fmt.Sprintf(FailuresKeyPattern, scope.Key())
}

func (s *RedisFailureStore) RecordFailure(
	ctx context.Context,
	scope guard.Scope,
	at time.Time,
	window time.Duration,
) error {
	key := FailuresKey(scope)
	score := at.UnixMilli()
	member := fmt.Sprintf("%d:%s", score, s.uuidProvider().String())

	pipe := s.redis.TxPipeline()
	pipe.ZAdd(ctx, key, &redis.Z{
		Score:  float64(score),
		Member: member,
	})
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: record failure: %v", guard.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisFailureStore) CountRecentFailures(
	ctx context.Context,
	scope guard.Scope,
	window time.Duration,
	now time.Time,
) (int, error) {
	key := FailuresKey(scope)
	cutoff := strconv.FormatInt(now.Add(-window).UnixMilli(), 10)

	// MULTI/EXEC keeps prune and count from interleaving with writers on the
	// same key. Events scored exactly at the cutoff fall outside the window.
	pipe := s.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", cutoff)
	card := pipe.ZCard(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("%w: count failures: %v", guard.ErrStoreUnavailable, err)
	}
	count := card.Val()
	if count < 0 {
		return 0, nil
	}
	return int(count), nil
}

func (s *RedisFailureStore) ClearFailures(ctx context.Context, scope guard.Scope) error {
	if err := s.redis.Del(ctx, FailuresKey(scope)).Err(); err != nil {
		return fmt.Errorf("%w: clear failures: %v", guard.ErrStoreUnavailable, err)
	}
	return nil
}

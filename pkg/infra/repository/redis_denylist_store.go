package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/go-redis/redis/v8"
)

const (
	DenylistKeyPattern       = "authguard:denylist:%s"
	DenylistReportKeyPattern = "authguard:denylist_report:%s"
)

type RedisDenylistStore struct {
	redis *redis.Client
}

func NewRedisDenylistStore(redisClient *redis.Client) guard.DenylistStore {
	return &RedisDenylistStore{redis: redisClient}
}

func DenylistKey(address string) string {
	return fmt.Sprintf(DenylistKeyPattern, address)
}

func DenylistReportKey(address string) string {
	return fmt.Sprintf(DenylistReportKeyPattern, address)
}

func (s *RedisDenylistStore) IsDenied(ctx context.Context, address string, now time.Time) (bool, error) {
	if address == "" {
		return false, nil
	}
	_, err := s.GetEntry(ctx, address, now)
	if err != nil {
		if errors.Is(err, guard.ErrEntryNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *RedisDenylistStore) Deny(ctx context.Context, entry guard.DenylistEntry, now time.Time) error {
	ttl := entry.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal denylist entry: %w", err)
	}
	if err := s.redis.Set(ctx, DenylistKey(entry.Address), string(payload), ttl).Err(); err != nil {
		return fmt.Errorf("%w: deny address: %v", guard.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisDenylistStore) GetEntry(ctx context.Context, address string, now time.Time) (*guard.DenylistEntry, error) {
	raw, err := s.redis.Get(ctx, DenylistKey(address)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, guard.ErrEntryNotFound
		}
		return nil, fmt.Errorf("%w: get denylist entry: %v", guard.ErrStoreUnavailable, err)
	}
	var entry guard.DenylistEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal denylist entry: %w", err)
	}
	if !entry.ActiveAt(now) {
		return nil, guard.ErrEntryNotFound
	}
	return &entry, nil
}

func (s *RedisDenylistStore) RemoveEntry(ctx context.Context, address string) error {
	deleted, err := s.redis.Del(ctx, DenylistKey(address)).Result()
	if err != nil {
		return fmt.Errorf("%w: remove denylist entry: %v", guard.ErrStoreUnavailable, err)
	}
	if deleted == 0 {
		return guard.ErrEntryNotFound
	}
	return nil
}

func (s *RedisDenylistStore) ClaimAttemptReport(ctx context.Context, address string, interval time.Duration) (bool, error) {
	if interval <= 0 {
		return true, nil
	}
	claimed, err := s.redis.SetNX(ctx, DenylistReportKey(address), 1, interval).Result()
	if err != nil {
		return false, fmt.Errorf("%w: claim denylist report: %v", guard.ErrStoreUnavailable, err)
	}
	return claimed, nil
}

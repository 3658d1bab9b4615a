package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/prometheus"
)

const DefaultStoreTimeout = 150 * time.Millisecond

// IsExpectedError reports errors that are part of a store's contract and must
// not count against its breaker.
func IsExpectedError(err error) bool {
	return err == nil || errors.Is(err, guard.ErrEntryNotFound)
}

type guardedCall struct {
	store   string
	timeout time.Duration
	breaker CircuitBreaker
}

func newGuardedCall(store string, timeout time.Duration, breaker CircuitBreaker) guardedCall {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return guardedCall{store: store, timeout: timeout, breaker: breaker}
}

func call[T any](ctx context.Context, g guardedCall, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	run := func() error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	}

	var err error
	if g.breaker != nil {
		err = g.breaker.Execute(run)
	} else {
		err = run()
	}
	if err == nil {
		return result, nil
	}
	if errors.Is(err, guard.ErrEntryNotFound) {
		return result, guard.ErrEntryNotFound
	}
	prometheus.StoreErrorsTotal.WithLabelValues(g.store, operation).Inc()
	if errors.Is(err, guard.ErrStoreUnavailable) {
		return result, err
	}
	return result, fmt.Errorf("%w: %s %s: %v", guard.ErrStoreUnavailable, g.store, operation, err)
}

func exec(ctx context.Context, g guardedCall, operation string, fn func(ctx context.Context) error) error {
	_, err := call(ctx, g, operation, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

type guardedFailureStore struct {
	next guard.FailureStore
	g    guardedCall
}

func NewGuardedFailureStore(next guard.FailureStore, timeout time.Duration, breaker CircuitBreaker) guard.FailureStore {
	return &guardedFailureStore{next: next, g: newGuardedCall("failures", timeout, breaker)}
}

func (s *guardedFailureStore) RecordFailure(ctx context.Context, scope guard.Scope, at time.Time, window time.Duration) error {
	return exec(ctx, s.g, "record", func(ctx context.Context) error {
		return s.next.RecordFailure(ctx, scope, at, window)
	})
}

func (s *guardedFailureStore) CountRecentFailures(
	ctx context.Context,
	scope guard.Scope,
	window time.Duration,
	now time.Time,
) (int, error) {
	return call(ctx, s.g, "count", func(ctx context.Context) (int, error) {
		return s.next.CountRecentFailures(ctx, scope, window, now)
	})
}

func (s *guardedFailureStore) ClearFailures(ctx context.Context, scope guard.Scope) error {
	return exec(ctx, s.g, "clear", func(ctx context.Context) error {
		return s.next.ClearFailures(ctx, scope)
	})
}

type lockoutResult struct {
	until  time.Time
	active bool
}

type guardedLockoutStore struct {
	next guard.LockoutStore
	g    guardedCall
}

func NewGuardedLockoutStore(next guard.LockoutStore, timeout time.Duration, breaker CircuitBreaker) guard.LockoutStore {
	return &guardedLockoutStore{next: next, g: newGuardedCall("lockouts", timeout, breaker)}
}

func (s *guardedLockoutStore) GetLockout(ctx context.Context, scope guard.Scope, now time.Time) (time.Time, bool, error) {
	res, err := call(ctx, s.g, "get", func(ctx context.Context) (lockoutResult, error) {
		until, active, err := s.next.GetLockout(ctx, scope, now)
		return lockoutResult{until: until, active: active}, err
	})
	return res.until, res.active, err
}

func (s *guardedLockoutStore) SetLockout(ctx context.Context, scope guard.Scope, expiresAt time.Time, now time.Time) error {
	return exec(ctx, s.g, "set", func(ctx context.Context) error {
		return s.next.SetLockout(ctx, scope, expiresAt, now)
	})
}

func (s *guardedLockoutStore) ClearLockout(ctx context.Context, scope guard.Scope) error {
	return exec(ctx, s.g, "clear", func(ctx context.Context) error {
		return s.next.ClearLockout(ctx, scope)
	})
}

type guardedViolationCounter struct {
	next guard.ViolationCounter
	g    guardedCall
}

func NewGuardedViolationCounter(next guard.ViolationCounter, timeout time.Duration, breaker CircuitBreaker) guard.ViolationCounter {
	return &guardedViolationCounter{next: next, g: newGuardedCall("violations", timeout, breaker)}
}

func (s *guardedViolationCounter) IncrementAndGet(ctx context.Context, scope guard.Scope) (int, error) {
	return call(ctx, s.g, "increment", func(ctx context.Context) (int, error) {
		return s.next.IncrementAndGet(ctx, scope)
	})
}

func (s *guardedViolationCounter) GetViolations(ctx context.Context, scope guard.Scope) (int, error) {
	return call(ctx, s.g, "get", func(ctx context.Context) (int, error) {
		return s.next.GetViolations(ctx, scope)
	})
}

type guardedDenylistStore struct {
	next guard.DenylistStore
	g    guardedCall
}

func NewGuardedDenylistStore(next guard.DenylistStore, timeout time.Duration, breaker CircuitBreaker) guard.DenylistStore {
	return &guardedDenylistStore{next: next, g: newGuardedCall("denylist", timeout, breaker)}
}

func (s *guardedDenylistStore) IsDenied(ctx context.Context, address string, now time.Time) (bool, error) {
	return call(ctx, s.g, "check", func(ctx context.Context) (bool, error) {
		return s.next.IsDenied(ctx, address, now)
	})
}

func (s *guardedDenylistStore) Deny(ctx context.Context, entry guard.DenylistEntry, now time.Time) error {
	return exec(ctx, s.g, "deny", func(ctx context.Context) error {
		return s.next.Deny(ctx, entry, now)
	})
}

func (s *guardedDenylistStore) GetEntry(ctx context.Context, address string, now time.Time) (*guard.DenylistEntry, error) {
	return call(ctx, s.g, "get", func(ctx context.Context) (*guard.DenylistEntry, error) {
		return s.next.GetEntry(ctx, address, now)
	})
}

func (s *guardedDenylistStore) RemoveEntry(ctx context.Context, address string) error {
	return exec(ctx, s.g, "remove", func(ctx context.Context) error {
		return s.next.RemoveEntry(ctx, address)
	})
}

func (s *guardedDenylistStore) ClaimAttemptReport(ctx context.Context, address string, interval time.Duration) (bool, error) {
	return call(ctx, s.g, "claim_report", func(ctx context.Context) (bool, error) {
		return s.next.ClaimAttemptReport(ctx, address, interval)
	})
}

package guard

import (
	"context"
	"time"
)

//go:generate mockery --name=FailureStore --dir=. --output=../../../mocks --filename=failure_store_mock.go --case=underscore --with-expecter
type FailureStore interface {
	RecordFailure(ctx context.Context, scope Scope, at time.Time, window time.Duration) error
	// CountRecentFailures prunes events at or before now-window and counts the
	// rest in one atomic step per key.
	CountRecentFailures(ctx context.Context, scope Scope, window time.Duration, now time.Time) (int, error)
	ClearFailures(ctx context.Context, scope Scope) error
}

//go:generate mockery --name=LockoutStore --dir=. --output=../../../mocks --filename=lockout_store_mock.go --case=underscore --with-expecter
type LockoutStore interface {
	// GetLockout reports the expiry of an active lockout. Expired markers the
	// backend still holds are reported as absent.
	GetLockout(ctx context.Context, scope Scope, now time.Time) (time.Time, bool, error)
	SetLockout(ctx context.Context, scope Scope, expiresAt time.Time, now time.Time) error
	ClearLockout(ctx context.Context, scope Scope) error
}

//go:generate mockery --name=ViolationCounter --dir=. --output=../../../mocks --filename=violation_counter_mock.go --case=underscore --with-expecter
type ViolationCounter interface {
	IncrementAndGet(ctx context.Context, scope Scope) (int, error)
	GetViolations(ctx context.Context, scope Scope) (int, error)
}

//go:generate mockery --name=DenylistStore --dir=. --output=../../../mocks --filename=denylist_store_mock.go --case=underscore --with-expecter
type DenylistStore interface {
	IsDenied(ctx context.Context, address string, now time.Time) (bool, error)
	Deny(ctx context.Context, entry DenylistEntry, now time.Time) error
	GetEntry(ctx context.Context, address string, now time.Time) (*DenylistEntry, error)
	RemoveEntry(ctx context.Context, address string) error
	// ClaimAttemptReport succeeds for at most one caller per address and
	// interval, across every guard instance sharing the store.
	ClaimAttemptReport(ctx context.Context, address string, interval time.Duration) (bool, error)
}

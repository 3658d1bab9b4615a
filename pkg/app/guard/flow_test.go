package guard_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/app/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/app/policy"
	domain "github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore backs all four store contracts with maps so whole login episodes
// can be replayed against a controllable clock.
type memStore struct {
	mu         sync.Mutex
	failures   map[string][]time.Time
	lockouts   map[string]time.Time
	violations map[string]int
	denylist   map[string]domain.DenylistEntry
	reported   map[string]time.Time
	now        func() time.Time
}

func newMemStore() *memStore {
	return &memStore{
		failures:   make(map[string][]time.Time),
		lockouts:   make(map[string]time.Time),
		violations: make(map[string]int),
		denylist:   make(map[string]domain.DenylistEntry),
		reported:   make(map[string]time.Time),
		now:        time.Now,
	}
}

func (m *memStore) RecordFailure(_ context.Context, scope domain.Scope, at time.Time, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[scope.Key()] = append(m.failures[scope.Key()], at)
	return nil
}

func (m *memStore) CountRecentFailures(_ context.Context, scope domain.Scope, window time.Duration, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := now.Add(-window)
	kept := m.failures[scope.Key()][:0]
	for _, at := range m.failures[scope.Key()] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	m.failures[scope.Key()] = kept
	return len(kept), nil
}

func (m *memStore) ClearFailures(_ context.Context, scope domain.Scope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.failures, scope.Key())
	return nil
}

func (m *memStore) GetLockout(_ context.Context, scope domain.Scope, now time.Time) (time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	until, ok := m.lockouts[scope.Key()]
	if !ok || !until.After(now) {
		return time.Time{}, false, nil
	}
	return until, true, nil
}

func (m *memStore) SetLockout(_ context.Context, scope domain.Scope, expiresAt time.Time, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lockouts[scope.Key()] = expiresAt
	return nil
}

func (m *memStore) ClearLockout(_ context.Context, scope domain.Scope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lockouts, scope.Key())
	return nil
}

func (m *memStore) IncrementAndGet(_ context.Context, scope domain.Scope) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.violations[scope.Key()]++
	return m.violations[scope.Key()], nil
}

func (m *memStore) GetViolations(_ context.Context, scope domain.Scope) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.violations[scope.Key()], nil
}

func (m *memStore) IsDenied(_ context.Context, address string, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.denylist[address]
	return ok && entry.ActiveAt(now), nil
}

func (m *memStore) Deny(_ context.Context, entry domain.DenylistEntry, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denylist[entry.Address] = entry
	return nil
}

func (m *memStore) GetEntry(_ context.Context, address string, now time.Time) (*domain.DenylistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.denylist[address]
	if !ok || !entry.ActiveAt(now) {
		return nil, domain.ErrEntryNotFound
	}
	return &entry, nil
}

func (m *memStore) RemoveEntry(_ context.Context, address string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.denylist[address]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(m.denylist, address)
	return nil
}

func (m *memStore) ClaimAttemptReport(_ context.Context, address string, interval time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if until, ok := m.reported[address]; ok && now.Before(until) {
		return false, nil
	}
	m.reported[address] = now.Add(interval)
	return true, nil
}

type recordingEmitter struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingEmitter) Emit(_ context.Context, event security.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event.EventType)
}

func (r *recordingEmitter) count(eventType string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e == eventType {
			n++
		}
	}
	return n
}

type flow struct {
	now     time.Time
	store   *memStore
	emitter *recordingEmitter
	service guard.Service
	admin   guard.Administrator
}

func newFlow(t *testing.T, denylistThreshold int) *flow {
	t.Helper()
	registry, err := policy.NewRegistry(policy.DefaultPolicies())
	require.NoError(t, err)

	f := &flow{
		now:     fixedNow,
		store:   newMemStore(),
		emitter: &recordingEmitter{},
	}
	f.store.now = func() time.Time { return f.now }
	stores := guard.Stores{
		Failures:   f.store,
		Lockouts:   f.store,
		Violations: f.store,
		Denylist:   f.store,
	}
	opts := &guard.ServiceOpts{
		Window:            time.Hour,
		DenylistThreshold: denylistThreshold,
		TimeProvider:      func() time.Time { return f.now },
	}
	f.service = guard.NewService(logrus.New(), registry, stores, f.emitter, opts)
	f.admin = guard.NewAdministrator(logrus.New(), registry, stores, f.emitter, opts)
	return f
}

func (f *flow) fail(t *testing.T, attempt guard.Attempt, times int) {
	t.Helper()
	for i := 0; i < times; i++ {
		d := f.service.Check(context.Background(), attempt)
		require.True(t, d.Allowed, "attempt %d should be allowed", i+1)
		f.service.Observe(context.Background(), attempt, http.StatusUnauthorized)
		f.now = f.now.Add(time.Second)
	}
}

func flowLoginAttempt() guard.Attempt {
	return guard.Attempt{
		Category: domain.CategoryLogin,
		Address:  testAddress,
		Identity: testIdentity,
		Method:   http.MethodPost,
		Path:     "/api/v1/auth/login",
	}
}

func TestFlow_LockoutAfterBudgetIsSpent(t *testing.T) {
	f := newFlow(t, 0)
	attempt := flowLoginAttempt()

	f.fail(t, attempt, 5)

	d := f.service.Check(context.Background(), attempt)
	assert.False(t, d.Allowed)
	assert.Equal(t, domain.DecisionAddressRateLimit, d.Type)
	assert.Equal(t, http.StatusTooManyRequests, d.StatusCode)
	assert.Equal(t, 900, d.RetryAfterSeconds())
	assert.Equal(t, 1, d.ViolationCount)
	assert.Equal(t, 2, f.emitter.count(security.EventTypeAuthLockout))

	d = f.service.Check(context.Background(), attempt)
	assert.False(t, d.Allowed)
	assert.Equal(t, domain.DecisionAddressLockout, d.Type)

	f.now = f.now.Add(15*time.Minute + time.Second)
	d = f.service.Check(context.Background(), attempt)
	assert.True(t, d.Allowed)
	assert.Equal(t, 5, d.Remaining)
}

func TestFlow_SuccessfulLoginsDoNotCount(t *testing.T) {
	f := newFlow(t, 0)
	attempt := flowLoginAttempt()

	for i := 0; i < 20; i++ {
		d := f.service.Check(context.Background(), attempt)
		require.True(t, d.Allowed)
		f.service.Observe(context.Background(), attempt, http.StatusOK)
	}
	assert.Equal(t, 0, f.emitter.count(security.EventTypeAuthFailure))
}

func TestFlow_SecondBreachDoublesLockout(t *testing.T) {
	f := newFlow(t, 0)
	attempt := flowLoginAttempt()

	f.fail(t, attempt, 5)
	require.False(t, f.service.Check(context.Background(), attempt).Allowed)
	f.now = f.now.Add(16 * time.Minute)

	f.fail(t, attempt, 5)
	d := f.service.Check(context.Background(), attempt)
	assert.False(t, d.Allowed)
	assert.Equal(t, 2, d.ViolationCount)
	assert.Equal(t, 1800, d.RetryAfterSeconds())
}

func TestFlow_WindowSlidesOldFailuresOut(t *testing.T) {
	f := newFlow(t, 0)
	attempt := flowLoginAttempt()

	f.fail(t, attempt, 4)
	f.now = f.now.Add(time.Hour)

	d := f.service.Check(context.Background(), attempt)
	assert.True(t, d.Allowed)
	assert.Equal(t, 5, d.Remaining)
}

func TestFlow_RepeatedBreachesDenylistAddress(t *testing.T) {
	f := newFlow(t, 2)
	attempt := flowLoginAttempt()

	for breach := 0; breach < 2; breach++ {
		f.fail(t, attempt, 5)
		require.False(t, f.service.Check(context.Background(), attempt).Allowed)
		f.now = f.now.Add(2 * time.Hour)
	}
	assert.Equal(t, 1, f.emitter.count(security.EventTypeIPBlacklisted))

	other := attempt
	other.Category = domain.CategoryPasswordReset
	other.Identity = "bob@example.com"
	d := f.service.Check(context.Background(), other)
	assert.False(t, d.Allowed)
	assert.Equal(t, domain.DecisionAddressDenied, d.Type)
	assert.Equal(t, http.StatusForbidden, d.StatusCode)

	entry, err := f.admin.GetDenylistEntry(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.ViolationCount)
	assert.Equal(t, f.now.Add(-2*time.Hour).Add(48*time.Hour).UTC(), entry.ExpiresAt)

	require.NoError(t, f.admin.RemoveDenylistEntry(context.Background(), testAddress))
	assert.True(t, f.service.Check(context.Background(), other).Allowed)
}

func TestFlow_AdminUnlockReleasesScope(t *testing.T) {
	f := newFlow(t, 0)
	attempt := flowLoginAttempt()

	f.fail(t, attempt, 5)
	require.False(t, f.service.Check(context.Background(), attempt).Allowed)

	require.NoError(t, f.admin.Unlock(context.Background(), domain.AddressScope(testAddress, domain.CategoryLogin)))
	require.NoError(t, f.admin.Unlock(context.Background(), domain.IdentityScope(testIdentity, domain.CategoryLogin)))

	d := f.service.Check(context.Background(), attempt)
	assert.True(t, d.Allowed)

	status, err := f.admin.ScopeStatus(context.Background(), domain.IdentityScope(testIdentity, domain.CategoryLogin))
	require.NoError(t, err)
	assert.False(t, status.LockedOut)
	assert.Equal(t, 1, status.ViolationCount)
}

func TestFlow_DenylistedAttemptsReportedOncePerMinute(t *testing.T) {
	f := newFlow(t, 1)
	attempt := flowLoginAttempt()

	f.fail(t, attempt, 5)
	require.False(t, f.service.Check(context.Background(), attempt).Allowed)
	f.now = f.now.Add(2 * time.Hour)

	for i := 0; i < 50; i++ {
		d := f.service.Check(context.Background(), attempt)
		require.Equal(t, domain.DecisionAddressDenied, d.Type)
	}
	assert.Equal(t, 1, f.emitter.count(security.EventTypeBlacklistedIPAttempt))

	f.now = f.now.Add(time.Minute)
	f.service.Check(context.Background(), attempt)
	assert.Equal(t, 2, f.emitter.count(security.EventTypeBlacklistedIPAttempt))
}

package guard

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/app/policy"
	domain "github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAddress  = errors.New("invalid network address")
	ErrInvalidDuration = errors.New("invalid denylist duration")
)

type ScopeStatus struct {
	Kind           domain.ScopeKind         `json:"kind"`
	Value          string                   `json:"value"`
	Category       domain.OperationCategory `json:"category"`
	Failures       int                      `json:"failures_in_window"`
	Limit          int                      `json:"limit"`
	LockedOut      bool                     `json:"locked_out"`
	LockoutUntil   *time.Time               `json:"lockout_until,omitempty"`
	ViolationCount int                      `json:"violation_count"`
}

// Administrator backs the operator endpoints: manual denylisting and
// support-desk unlocks.
//
//go:generate mockery --name=Administrator --dir=. --output=../../../mocks --filename=guard_administrator_mock.go --case=underscore --with-expecter
type Administrator interface {
	GetDenylistEntry(ctx context.Context, address string) (*domain.DenylistEntry, error)
	DenyAddress(ctx context.Context, address string, days int, reason string) (*domain.DenylistEntry, error)
	RemoveDenylistEntry(ctx context.Context, address string) error
	ScopeStatus(ctx context.Context, scope domain.Scope) (*ScopeStatus, error)
	Unlock(ctx context.Context, scope domain.Scope) error
}

type administrator struct {
	logger          *logrus.Logger
	registry        policy.Registry
	stores          Stores
	emitter         security.Emitter
	window          time.Duration
	denylistMaxDays int
	timeProvider    func() time.Time
}

func NewAdministrator(
	logger *logrus.Logger,
	registry policy.Registry,
	stores Stores,
	emitter security.Emitter,
	opts *ServiceOpts,
) Administrator {
	a := &administrator{
		logger:          logger,
		registry:        registry,
		stores:          stores,
		emitter:         emitter,
		window:          time.Hour,
		denylistMaxDays: domain.DefaultDenylistMaxDays,
		timeProvider:    time.Now,
	}
	if opts != nil {
		if opts.Window > 0 {
			a.window = opts.Window
		}
		if opts.DenylistMaxDays > 0 {
			a.denylistMaxDays = opts.DenylistMaxDays
		}
		if opts.TimeProvider != nil {
			a.timeProvider = opts.TimeProvider
		}
	}
	return a
}

func (a *administrator) GetDenylistEntry(ctx context.Context, address string) (*domain.DenylistEntry, error) {
	address, err := parseAddress(address)
	if err != nil {
		return nil, err
	}
	return a.stores.Denylist.GetEntry(ctx, address, a.timeProvider())
}

func (a *administrator) DenyAddress(ctx context.Context, address string, days int, reason string) (*domain.DenylistEntry, error) {
	address, err := parseAddress(address)
	if err != nil {
		return nil, err
	}
	if days < 1 || days > a.denylistMaxDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidDuration, a.denylistMaxDays)
	}
	if reason == "" {
		reason = "manual denylist"
	}
	now := a.timeProvider()
	entry := domain.DenylistEntry{
		Address:       address,
		BlacklistedAt: now.UTC(),
		ExpiresAt:     now.Add(time.Duration(days) * 24 * time.Hour).UTC(),
		Reason:        reason,
	}
	if err := a.stores.Denylist.Deny(ctx, entry, now); err != nil {
		return nil, err
	}

	event := security.NewEvent(security.EventTypeAdminBlacklist, security.SeverityMedium)
	event.IPAddress = address
	event.Details["days"] = days
	event.Details["reason"] = reason
	a.emitter.Emit(ctx, event)

	return &entry, nil
}

func (a *administrator) RemoveDenylistEntry(ctx context.Context, address string) error {
	address, err := parseAddress(address)
	if err != nil {
		return err
	}
	if err := a.stores.Denylist.RemoveEntry(ctx, address); err != nil {
		return err
	}

	event := security.NewEvent(security.EventTypeAdminUnblacklist, security.SeverityMedium)
	event.IPAddress = address
	a.emitter.Emit(ctx, event)
	return nil
}

func (a *administrator) ScopeStatus(ctx context.Context, scope domain.Scope) (*ScopeStatus, error) {
	p, ok := a.registry.Policy(scope.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, scope.Category)
	}
	scope = normalizeScope(scope)
	now := a.timeProvider()

	failures, err := a.stores.Failures.CountRecentFailures(ctx, scope, a.window, now)
	if err != nil {
		return nil, err
	}
	until, active, err := a.stores.Lockouts.GetLockout(ctx, scope, now)
	if err != nil {
		return nil, err
	}
	violations, err := a.stores.Violations.GetViolations(ctx, scope)
	if err != nil {
		return nil, err
	}

	status := &ScopeStatus{
		Kind:           scope.Kind,
		Value:          scope.Value,
		Category:       scope.Category,
		Failures:       failures,
		Limit:          p.LimitFor(scope.Kind),
		LockedOut:      active,
		ViolationCount: violations,
	}
	if active {
		u := until.UTC()
		status.LockoutUntil = &u
	}
	return status, nil
}

// Unlock clears the lockout and failure window. The violation counter is
// kept so a repeat offender still escalates.
func (a *administrator) Unlock(ctx context.Context, scope domain.Scope) error {
	if _, ok := a.registry.Policy(scope.Category); !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCategory, scope.Category)
	}
	scope = normalizeScope(scope)
	if err := a.stores.Lockouts.ClearLockout(ctx, scope); err != nil {
		return err
	}
	if err := a.stores.Failures.ClearFailures(ctx, scope); err != nil {
		return err
	}

	a.logger.WithFields(logrus.Fields{
		"scope":    scope.Kind,
		"category": scope.Category,
	}).Info("scope unlocked by operator")

	event := security.NewEvent(security.EventTypeAdminUnlock, security.SeverityMedium)
	event.Category = scope.Category.String()
	if scope.IsAddress() {
		event.IPAddress = scope.Value
	} else {
		event.UserID = scope.Value
	}
	a.emitter.Emit(ctx, event)
	return nil
}

func parseAddress(address string) (string, error) {
	ip := net.ParseIP(normalizeAddress(address))
	if ip == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return ip.String(), nil
}

func normalizeScope(scope domain.Scope) domain.Scope {
	if scope.IsAddress() {
		scope.Value = normalizeAddress(scope.Value)
	} else {
		scope.Value = normalizeIdentity(scope.Value)
	}
	return scope
}

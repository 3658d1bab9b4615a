package guard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/app/policy"
	domain "github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/AuthGuard/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Attempt is one request against a classified route.
type Attempt struct {
	Category  domain.OperationCategory
	Address   string
	Identity  string
	Method    string
	Path      string
	UserAgent string
}

func (a Attempt) scopes() []domain.Scope {
	scopes := make([]domain.Scope, 0, 2)
	if a.Address != "" {
		scopes = append(scopes, domain.AddressScope(a.Address, a.Category))
	}
	if a.Identity != "" {
		scopes = append(scopes, domain.IdentityScope(a.Identity, a.Category))
	}
	return scopes
}

//go:generate mockery --name=Service --dir=. --output=../../../mocks --filename=guard_service_mock.go --case=underscore --with-expecter
type Service interface {
	// Check never fails: store faults resolve to the configured fail mode.
	Check(ctx context.Context, attempt Attempt) domain.Decision
	// Observe records a failure when status reports a rejected credential.
	Observe(ctx context.Context, attempt Attempt, status int)
}

type FailMode string

const (
	FailOpen   FailMode = "open"
	FailClosed FailMode = "closed"
)

type ServiceOpts struct {
	FailMode          FailMode
	Window            time.Duration
	DenylistThreshold int
	DenylistMaxDays   int
	// DenylistEventInterval bounds blacklisted_ip_attempt events to one per
	// address per interval. Zero keeps the one minute default.
	DenylistEventInterval time.Duration
	TimeProvider          func() time.Time
}

type Stores struct {
	Failures   domain.FailureStore
	Lockouts   domain.LockoutStore
	Violations domain.ViolationCounter
	Denylist   domain.DenylistStore
}

type service struct {
	logger            *logrus.Logger
	registry          policy.Registry
	stores            Stores
	emitter           security.Emitter
	failMode          FailMode
	window            time.Duration
	denylistThreshold int
	denylistMaxDays   int
	eventInterval     time.Duration
	timeProvider      func() time.Time
}

func NewService(
	logger *logrus.Logger,
	registry policy.Registry,
	stores Stores,
	emitter security.Emitter,
	opts *ServiceOpts,
) Service {
	s := &service{
		logger:            logger,
		registry:          registry,
		stores:            stores,
		emitter:           emitter,
		failMode:          FailOpen,
		window:            time.Hour,
		denylistThreshold: domain.DefaultDenylistThreshold,
		denylistMaxDays:   domain.DefaultDenylistMaxDays,
		eventInterval:     time.Minute,
		timeProvider:      time.Now,
	}
	if opts != nil {
		if opts.FailMode == FailClosed {
			s.failMode = FailClosed
		}
		if opts.Window > 0 {
			s.window = opts.Window
		}
		if opts.DenylistThreshold > 0 {
			s.denylistThreshold = opts.DenylistThreshold
		}
		if opts.DenylistMaxDays > 0 {
			s.denylistMaxDays = opts.DenylistMaxDays
		}
		if opts.DenylistEventInterval > 0 {
			s.eventInterval = opts.DenylistEventInterval
		}
		if opts.TimeProvider != nil {
			s.timeProvider = opts.TimeProvider
		}
	}
	return s
}

// checkState carries the fail-open bookkeeping of one Check call.
type checkState struct {
	degraded bool
}

func (s *service) Check(ctx context.Context, attempt Attempt) domain.Decision {
	start := time.Now()
	p, ok := s.registry.Policy(attempt.Category)
	if !ok {
		return domain.Decision{Allowed: true}
	}
	defer func() {
		prometheus.GuardCheckLatency.
			WithLabelValues(attempt.Category.String()).
			Observe(float64(time.Since(start).Microseconds()) / 1000)
	}()

	decision := s.evaluate(ctx, attempt, p)
	prometheus.GuardDecisionsTotal.
		WithLabelValues(attempt.Category.String(), string(decision.Type)).
		Inc()
	return decision
}

func (s *service) evaluate(ctx context.Context, attempt Attempt, p domain.Policy) domain.Decision {
	now := s.timeProvider()
	state := &checkState{}

	if d, rejected := s.checkDenylist(ctx, attempt, now, state); rejected {
		return d
	}
	if state.degraded && s.failMode == FailClosed {
		return unavailableDecision()
	}

	scopes := attempt.scopes()

	if d, rejected := s.checkLockouts(ctx, attempt, scopes, now, state); rejected {
		return d
	}
	if state.degraded && s.failMode == FailClosed {
		return unavailableDecision()
	}

	d := s.checkWindow(ctx, attempt, p, scopes, now, state)
	if state.degraded && s.failMode == FailClosed && d.Allowed {
		return unavailableDecision()
	}
	d.Degraded = state.degraded
	return d
}

func (s *service) checkDenylist(ctx context.Context, attempt Attempt, now time.Time, state *checkState) (domain.Decision, bool) {
	if attempt.Address == "" {
		return domain.Decision{}, false
	}
	denied, err := s.stores.Denylist.IsDenied(ctx, attempt.Address, now)
	if err != nil {
		s.storeFault(err, "denylist_check", domain.AddressScope(attempt.Address, attempt.Category))
		state.degraded = true
		return domain.Decision{}, false
	}
	if !denied {
		return domain.Decision{}, false
	}

	s.reportDeniedAttempt(ctx, attempt)

	return domain.Decision{
		Allowed:    false,
		Type:       domain.DecisionAddressDenied,
		ScopeKind:  domain.ScopeAddress,
		StatusCode: http.StatusForbidden,
		Code:       domain.CodeAddressDenied,
		Message:    "Access from your network address has been temporarily blocked due to repeated abuse",
	}, true
}

// reportDeniedAttempt emits at most one event per address and interval so a
// denylisted client hammering the guard cannot flood the event sink.
func (s *service) reportDeniedAttempt(ctx context.Context, attempt Attempt) {
	claimed, err := s.stores.Denylist.ClaimAttemptReport(ctx, attempt.Address, s.eventInterval)
	if err != nil {
		s.logger.WithError(err).
			WithField("address", attempt.Address).
			Debug("skipping denied attempt event")
		return
	}
	if !claimed {
		return
	}
	event := s.newEvent(security.EventTypeBlacklistedIPAttempt, security.SeverityHigh, attempt)
	event.Details["path"] = attempt.Path
	s.emitter.Emit(ctx, event)
}

type lockoutRead struct {
	until      time.Time
	active     bool
	violations int
	err        error
}

func (s *service) checkLockouts(
	ctx context.Context,
	attempt Attempt,
	scopes []domain.Scope,
	now time.Time,
	state *checkState,
) (domain.Decision, bool) {
	reads := make([]lockoutRead, len(scopes))
	g, gctx := errgroup.WithContext(ctx)
	for i, scope := range scopes {
		i, scope := i, scope
		g.Go(func() error {
			until, active, err := s.stores.Lockouts.GetLockout(gctx, scope, now)
			reads[i] = lockoutRead{until: until, active: active, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var (
		best  domain.Decision
		found bool
	)
	for i, scope := range scopes {
		r := reads[i]
		if r.err != nil {
			s.storeFault(r.err, "lockout_get", scope)
			state.degraded = true
			continue
		}
		if !r.active {
			continue
		}
		violations, err := s.stores.Violations.GetViolations(ctx, scope)
		if err != nil {
			s.storeFault(err, "violations_get", scope)
		}
		d := rejectDecision(domain.LockoutType(scope.Kind), scope.Kind, now, r.until, violations)
		d.Message = "Too many failed attempts. Please try again later."
		if !found || d.MoreRestrictive(best) {
			best, found = d, true
		}
	}
	if found {
		s.logger.WithFields(logrus.Fields{
			"category": attempt.Category,
			"scope":    best.ScopeKind,
			"until":    best.LockoutUntil,
		}).Debug("request rejected by active lockout")
	}
	return best, found
}

func (s *service) checkWindow(
	ctx context.Context,
	attempt Attempt,
	p domain.Policy,
	scopes []domain.Scope,
	now time.Time,
	state *checkState,
) domain.Decision {
	counts := make([]int, len(scopes))
	errs := make([]error, len(scopes))
	g, gctx := errgroup.WithContext(ctx)
	for i, scope := range scopes {
		i, scope := i, scope
		g.Go(func() error {
			counts[i], errs[i] = s.stores.Failures.CountRecentFailures(gctx, scope, s.window, now)
			return nil
		})
	}
	_ = g.Wait()

	allowed := domain.Decision{
		Allowed:    true,
		Type:       domain.DecisionAddressAllowed,
		ScopeKind:  domain.ScopeAddress,
		StatusCode: http.StatusOK,
		Remaining:  p.MaxAttemptsPerAddressHour,
		ResetAt:    now.Add(s.window),
	}
	var (
		reject   domain.Decision
		breached bool
		first    = true
	)
	for i, scope := range scopes {
		if errs[i] != nil {
			s.storeFault(errs[i], "failures_count", scope)
			state.degraded = true
			counts[i] = 0
		}
		limit := p.LimitFor(scope.Kind)
		if counts[i] >= limit {
			d := s.applyPenalty(ctx, attempt, p, scope, counts[i], now, state)
			if !breached || d.MoreRestrictive(reject) {
				reject = d
			}
			breached = true
			continue
		}
		remaining := limit - counts[i]
		if first || remaining < allowed.Remaining {
			allowed.Remaining = remaining
			allowed.Type = domain.AllowedType(scope.Kind)
			allowed.ScopeKind = scope.Kind
		}
		first = false
	}
	if breached {
		return reject
	}
	return allowed
}

// applyPenalty escalates the scope's violation count, locks it out and, for
// addresses past the threshold, denylists it. The failure window is cleared
// so the lockout consumes the episode.
func (s *service) applyPenalty(
	ctx context.Context,
	attempt Attempt,
	p domain.Policy,
	scope domain.Scope,
	failures int,
	now time.Time,
	state *checkState,
) domain.Decision {
	violations, err := s.stores.Violations.IncrementAndGet(ctx, scope)
	if err != nil {
		s.storeFault(err, "violations_increment", scope)
		state.degraded = true
		violations = 1
	}
	duration := p.LockoutDuration(violations)
	until := now.Add(duration)

	if err := s.stores.Lockouts.SetLockout(ctx, scope, until, now); err != nil {
		s.storeFault(err, "lockout_set", scope)
		state.degraded = true
	}
	if err := s.stores.Failures.ClearFailures(ctx, scope); err != nil {
		s.storeFault(err, "failures_clear", scope)
	}

	event := s.newEvent(security.EventTypeAuthLockout, security.SeverityHigh, attempt)
	event.Details["scope"] = string(scope.Kind)
	event.Details["failures"] = failures
	event.Details["violation_count"] = violations
	event.Details["lockout_seconds"] = int(duration.Seconds())
	event.Details["lockout_until"] = until.UTC().Format(time.RFC3339)
	s.emitter.Emit(ctx, event)

	if scope.IsAddress() && violations >= s.denylistThreshold {
		s.denyAddress(ctx, attempt, violations, now)
	}

	d := rejectDecision(domain.RateLimitType(scope.Kind), scope.Kind, now, until, violations)
	d.Message = fmt.Sprintf("Too many failed attempts. Try again in %d seconds.", d.RetryAfterSeconds())
	return d
}

func (s *service) denyAddress(ctx context.Context, attempt Attempt, violations int, now time.Time) {
	days := domain.DenylistDuration(violations, s.denylistMaxDays)
	entry := domain.DenylistEntry{
		Address:        attempt.Address,
		BlacklistedAt:  now.UTC(),
		ExpiresAt:      now.Add(days).UTC(),
		Reason:         fmt.Sprintf("repeated %s violations", attempt.Category),
		ViolationCount: violations,
	}
	if err := s.stores.Denylist.Deny(ctx, entry, now); err != nil {
		s.storeFault(err, "denylist_deny", domain.AddressScope(attempt.Address, attempt.Category))
		return
	}
	s.logger.WithFields(logrus.Fields{
		"address":         attempt.Address,
		"category":        attempt.Category,
		"violation_count": violations,
		"expires_at":      entry.ExpiresAt,
	}).Warn("address denylisted")

	event := s.newEvent(security.EventTypeIPBlacklisted, security.SeverityCritical, attempt)
	event.Details["violation_count"] = violations
	event.Details["expires_at"] = entry.ExpiresAt.Format(time.RFC3339)
	event.Details["reason"] = entry.Reason
	s.emitter.Emit(ctx, event)
}

func (s *service) Observe(ctx context.Context, attempt Attempt, status int) {
	if status != http.StatusUnauthorized && status != http.StatusForbidden {
		return
	}
	if _, ok := s.registry.Policy(attempt.Category); !ok {
		return
	}
	now := s.timeProvider()
	scopes := attempt.scopes()

	var g errgroup.Group
	for _, scope := range scopes {
		scope := scope
		g.Go(func() error {
			if err := s.stores.Failures.RecordFailure(ctx, scope, now, s.window); err != nil {
				s.storeFault(err, "failures_record", scope)
			}
			return nil
		})
	}
	_ = g.Wait()
	prometheus.FailuresRecordedTotal.WithLabelValues(attempt.Category.String()).Inc()

	event := s.newEvent(security.EventTypeAuthFailure, security.SeverityMedium, attempt)
	event.Details["status"] = status
	event.Details["path"] = attempt.Path
	s.emitter.Emit(ctx, event)
}

func (s *service) newEvent(eventType string, severity security.Severity, attempt Attempt) security.Event {
	event := security.NewEvent(eventType, severity)
	event.IPAddress = attempt.Address
	event.UserID = attempt.Identity
	event.Category = attempt.Category.String()
	event.UserAgent = attempt.UserAgent
	if client := utils.ParseUserAgent(attempt.UserAgent).Fields(); client != nil {
		event.Details["client"] = client
	}
	return event
}

func (s *service) storeFault(err error, operation string, scope domain.Scope) {
	entry := s.logger.WithError(err).WithFields(logrus.Fields{
		"operation": operation,
		"scope":     scope.Kind,
		"category":  scope.Category,
		"fail_mode": s.failMode,
	})
	if errors.Is(err, context.Canceled) {
		entry.Debug("guard store call canceled")
		return
	}
	entry.Warn("guard store unavailable")
}

func rejectDecision(t domain.DecisionType, kind domain.ScopeKind, now, until time.Time, violations int) domain.Decision {
	return domain.Decision{
		Allowed:        false,
		Type:           t,
		ScopeKind:      kind,
		StatusCode:     http.StatusTooManyRequests,
		Code:           domain.CodeRateLimitExceeded,
		RetryAfter:     until.Sub(now),
		LockoutUntil:   until,
		ViolationCount: violations,
	}
}

func unavailableDecision() domain.Decision {
	return domain.Decision{
		Allowed:    false,
		Type:       domain.DecisionGuardUnavailable,
		StatusCode: http.StatusServiceUnavailable,
		Code:       domain.CodeGuardUnavailable,
		Message:    "Authentication is temporarily unavailable. Please try again shortly.",
		Degraded:   true,
	}
}

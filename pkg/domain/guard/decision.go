package guard

import (
	"math"
	"time"
)

type DecisionType string

const (
	DecisionAddressAllowed    DecisionType = "ip_allowed"
	DecisionIdentityAllowed   DecisionType = "user_allowed"
	DecisionAddressRateLimit  DecisionType = "ip_rate_limit"
	DecisionIdentityRateLimit DecisionType = "user_rate_limit"
	DecisionAddressLockout    DecisionType = "ip_lockout"
	DecisionIdentityLockout   DecisionType = "user_lockout"
	DecisionAddressDenied     DecisionType = "ip_blacklisted"
	DecisionGuardUnavailable  DecisionType = "guard_unavailable"
)

const (
	CodeRateLimitExceeded = "AUTH_RATE_LIMIT_EXCEEDED"
	CodeAddressDenied     = "IP_BLACKLISTED"
	CodeGuardUnavailable  = "AUTH_GUARD_UNAVAILABLE"
)

// Decision is the outcome of one guard evaluation. It is produced per request
// and only lives long enough to be rendered into response headers.
type Decision struct {
	Allowed        bool
	Type           DecisionType
	ScopeKind      ScopeKind
	StatusCode     int
	Code           string
	Message        string
	Remaining      int
	ResetAt        time.Time
	RetryAfter     time.Duration
	LockoutUntil   time.Time
	ViolationCount int
	// Degraded is set when a store fault forced a fail-open answer.
	Degraded bool
}

// RetryAfterSeconds rounds up so clients never retry early.
func (d Decision) RetryAfterSeconds() int {
	if d.RetryAfter <= 0 {
		return 0
	}
	return int(math.Ceil(d.RetryAfter.Seconds()))
}

// MoreRestrictive reports whether d should be surfaced instead of other when
// both reject the same request.
func (d Decision) MoreRestrictive(other Decision) bool {
	if d.Allowed != other.Allowed {
		return !d.Allowed
	}
	if !d.Allowed {
		return d.RetryAfter > other.RetryAfter
	}
	return d.Remaining < other.Remaining
}

func RateLimitType(kind ScopeKind) DecisionType {
	if kind == ScopeIdentity {
		return DecisionIdentityRateLimit
	}
	return DecisionAddressRateLimit
}

func LockoutType(kind ScopeKind) DecisionType {
	if kind == ScopeIdentity {
		return DecisionIdentityLockout
	}
	return DecisionAddressLockout
}

func AllowedType(kind ScopeKind) DecisionType {
	if kind == ScopeIdentity {
		return DecisionIdentityAllowed
	}
	return DecisionAddressAllowed
}

package guard

import (
	"fmt"
	"time"
)

// Policy holds the limits applied to one operation category.
type Policy struct {
	Category                   OperationCategory
	MaxAttemptsPerAddressHour  int
	MaxAttemptsPerIdentityHour int
	BaseLockout                time.Duration
	ProgressiveEnabled         bool
}

func (p Policy) Validate() error {
	if p.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidPolicy)
	}
	if p.MaxAttemptsPerAddressHour <= 0 {
		return fmt.Errorf("%w: %s: max attempts per address must be positive", ErrInvalidPolicy, p.Category)
	}
	if p.MaxAttemptsPerIdentityHour <= 0 {
		return fmt.Errorf("%w: %s: max attempts per identity must be positive", ErrInvalidPolicy, p.Category)
	}
	if p.BaseLockout <= 0 {
		return fmt.Errorf("%w: %s: base lockout must be positive", ErrInvalidPolicy, p.Category)
	}
	return nil
}

// LimitFor returns the hourly attempt budget for the given scope kind.
func (p Policy) LimitFor(kind ScopeKind) int {
	if kind == ScopeIdentity {
		return p.MaxAttemptsPerIdentityHour
	}
	return p.MaxAttemptsPerAddressHour
}

// LockoutDuration applies the progressive multiplier when enabled.
func (p Policy) LockoutDuration(violationCount int) time.Duration {
	if !p.ProgressiveEnabled {
		return p.BaseLockout
	}
	return p.BaseLockout * time.Duration(PenaltyMultiplier(violationCount))
}

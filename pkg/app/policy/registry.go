package policy

import (
	"fmt"
	"sort"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/config"
	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
)

//go:generate mockery --name=Registry --dir=. --output=../../../mocks --filename=policy_registry_mock.go --case=underscore --with-expecter
type Registry interface {
	Policy(category guard.OperationCategory) (guard.Policy, bool)
	Categories() []guard.OperationCategory
}

type registry struct {
	policies map[guard.OperationCategory]guard.Policy
}

func NewRegistry(policies []guard.Policy) (Registry, error) {
	r := &registry{policies: make(map[guard.OperationCategory]guard.Policy, len(policies))}
	for _, p := range policies {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.policies[p.Category]; dup {
			return nil, fmt.Errorf("%w: duplicate policy for %s", guard.ErrInvalidPolicy, p.Category)
		}
		r.policies[p.Category] = p
	}
	return r, nil
}

// NewRegistryFromConfig starts from the built-in policies and replaces any
// category present in cfg.
func NewRegistryFromConfig(cfg *config.GuardConfig) (Registry, error) {
	merged := make(map[guard.OperationCategory]guard.Policy)
	for _, p := range DefaultPolicies() {
		merged[p.Category] = p
	}
	for name, pc := range cfg.Policies {
		category := guard.OperationCategory(name)
		merged[category] = guard.Policy{
			Category:                   category,
			MaxAttemptsPerAddressHour:  pc.MaxAttemptsPerAddressHour,
			MaxAttemptsPerIdentityHour: pc.MaxAttemptsPerIdentityHour,
			BaseLockout:                time.Duration(pc.BaseLockoutMinutes) * time.Minute,
			ProgressiveEnabled:         pc.ProgressiveEnabled,
		}
	}
	policies := make([]guard.Policy, 0, len(merged))
	for _, p := range merged {
		policies = append(policies, p)
	}
	return NewRegistry(policies)
}

func (r *registry) Policy(category guard.OperationCategory) (guard.Policy, bool) {
	p, ok := r.policies[category]
	return p, ok
}

func (r *registry) Categories() []guard.OperationCategory {
	out := make([]guard.OperationCategory, 0, len(r.policies))
	for c := range r.policies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func DefaultPolicies() []guard.Policy {
	return []guard.Policy{
		{
			Category:                   guard.CategoryLogin,
			MaxAttemptsPerAddressHour:  5,
			MaxAttemptsPerIdentityHour: 5,
			BaseLockout:                15 * time.Minute,
			ProgressiveEnabled:         true,
		},
		{
			Category:                   guard.CategoryAdminLogin,
			MaxAttemptsPerAddressHour:  3,
			MaxAttemptsPerIdentityHour: 3,
			BaseLockout:                30 * time.Minute,
			ProgressiveEnabled:         true,
		},
		{
			Category:                   guard.CategoryPasswordReset,
			MaxAttemptsPerAddressHour:  3,
			MaxAttemptsPerIdentityHour: 3,
			BaseLockout:                60 * time.Minute,
			ProgressiveEnabled:         true,
		},
		{
			Category:                   guard.CategoryRegistration,
			MaxAttemptsPerAddressHour:  10,
			MaxAttemptsPerIdentityHour: 5,
			BaseLockout:                30 * time.Minute,
			ProgressiveEnabled:         false,
		},
		{
			Category:                   guard.CategoryOTPRequest,
			MaxAttemptsPerAddressHour:  5,
			MaxAttemptsPerIdentityHour: 5,
			BaseLockout:                10 * time.Minute,
			ProgressiveEnabled:         true,
		},
	}
}

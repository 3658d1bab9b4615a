package policy_test

import (
	"testing"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/app/policy"
	"github.com/NeuralTrust/AuthGuard/pkg/config"
	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Defaults(t *testing.T) {
	registry, err := policy.NewRegistry(policy.DefaultPolicies())
	require.NoError(t, err)

	login, ok := registry.Policy(guard.CategoryLogin)
	require.True(t, ok)
	assert.Equal(t, 5, login.MaxAttemptsPerAddressHour)
	assert.Equal(t, 15*time.Minute, login.BaseLockout)
	assert.True(t, login.ProgressiveEnabled)

	registration, ok := registry.Policy(guard.CategoryRegistration)
	require.True(t, ok)
	assert.Equal(t, 10, registration.MaxAttemptsPerAddressHour)
	assert.Equal(t, 5, registration.MaxAttemptsPerIdentityHour)
	assert.False(t, registration.ProgressiveEnabled)

	assert.Len(t, registry.Categories(), 5)
}

func TestNewRegistry_RejectsInvalidPolicy(t *testing.T) {
	_, err := policy.NewRegistry([]guard.Policy{{Category: guard.CategoryLogin}})
	assert.ErrorIs(t, err, guard.ErrInvalidPolicy)
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	p := policy.DefaultPolicies()[0]
	_, err := policy.NewRegistry([]guard.Policy{p, p})
	assert.ErrorIs(t, err, guard.ErrInvalidPolicy)
}

func TestNewRegistry_UnknownCategory(t *testing.T) {
	registry, err := policy.NewRegistry(policy.DefaultPolicies())
	require.NoError(t, err)

	_, ok := registry.Policy("checkout")
	assert.False(t, ok)
}

func TestNewRegistryFromConfig_OverridesAndAdds(t *testing.T) {
	cfg := &config.GuardConfig{
		Policies: map[string]config.PolicyConfig{
			"login": {
				MaxAttemptsPerAddressHour:  10,
				MaxAttemptsPerIdentityHour: 4,
				BaseLockoutMinutes:         5,
			},
			"magic_link": {
				MaxAttemptsPerAddressHour:  2,
				MaxAttemptsPerIdentityHour: 2,
				BaseLockoutMinutes:         20,
				ProgressiveEnabled:         true,
			},
		},
	}

	registry, err := policy.NewRegistryFromConfig(cfg)
	require.NoError(t, err)

	login, ok := registry.Policy(guard.CategoryLogin)
	require.True(t, ok)
	assert.Equal(t, 10, login.MaxAttemptsPerAddressHour)
	assert.Equal(t, 5*time.Minute, login.BaseLockout)
	assert.False(t, login.ProgressiveEnabled)

	magic, ok := registry.Policy("magic_link")
	require.True(t, ok)
	assert.Equal(t, 20*time.Minute, magic.BaseLockout)

	_, ok = registry.Policy(guard.CategoryOTPRequest)
	assert.True(t, ok)
}

func TestNewRegistryFromConfig_InvalidOverride(t *testing.T) {
	cfg := &config.GuardConfig{
		Policies: map[string]config.PolicyConfig{
			"login": {MaxAttemptsPerAddressHour: 0, MaxAttemptsPerIdentityHour: 1, BaseLockoutMinutes: 1},
		},
	}
	_, err := policy.NewRegistryFromConfig(cfg)
	assert.ErrorIs(t, err, guard.ErrInvalidPolicy)
}

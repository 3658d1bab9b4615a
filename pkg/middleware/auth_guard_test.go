package middleware_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NeuralTrust/AuthGuard/mocks"
	"github.com/NeuralTrust/AuthGuard/pkg/app/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/app/policy"
	"github.com/NeuralTrust/AuthGuard/pkg/common"
	domain "github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/middleware"
	"github.com/NeuralTrust/AuthGuard/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const loginPath = "/api/v1/auth/login"

var resetAt = time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)

func newGuardApp(t *testing.T, service guard.Service, handler fiber.Handler) *fiber.App {
	t.Helper()
	registry, err := policy.NewRegistry(policy.DefaultPolicies())
	require.NoError(t, err)
	classifier := policy.NewClassifier(logrus.New(), policy.DefaultRoutes(), registry)
	return newGuardAppWith(classifier, service, handler, &middleware.AuthGuardOpts{
		TrustForwardedHeaders: true,
	})
}

func newGuardAppWith(
	classifier policy.Classifier,
	service guard.Service,
	handler fiber.Handler,
	opts *middleware.AuthGuardOpts,
) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	app.Use(middleware.NewAuthGuardMiddleware(logger, classifier, service, opts).Middleware())
	app.All("/*", handler)
	return app
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, loginPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.HeaderForwardedFor, "203.0.113.5, 10.0.0.1")
	return req
}

func statusHandler(status int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(status)
	}
}

func TestAuthGuard_UnclassifiedRoutePassesThrough(t *testing.T) {
	service := mocks.NewService(t)
	app := newGuardApp(t, service, statusHandler(fiber.StatusOK))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(common.HeaderRateLimitType))
	assert.Empty(t, resp.Header.Get(common.HeaderRateLimitRemaining))
}

func TestAuthGuard_AllowedRequestIsAnnotatedAndObserved(t *testing.T) {
	service := mocks.NewService(t)
	service.EXPECT().
		Check(mock.Anything, mock.MatchedBy(func(a guard.Attempt) bool {
			return a.Category == domain.CategoryLogin &&
				a.Address == "203.0.113.5" &&
				a.Identity == "alice@example.com"
		})).
		Return(domain.Decision{
			Allowed:   true,
			Type:      domain.DecisionAddressAllowed,
			Remaining: 4,
			ResetAt:   resetAt,
		})
	service.EXPECT().
		Observe(mock.Anything, mock.AnythingOfType("guard.Attempt"), fiber.StatusOK).
		Return()

	app := newGuardApp(t, service, statusHandler(fiber.StatusOK))
	resp, err := app.Test(loginRequest(`{"email":" Alice@Example.com "}`))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ip_allowed", resp.Header.Get(common.HeaderRateLimitType))
	assert.Equal(t, "4", resp.Header.Get(common.HeaderRateLimitRemaining))
	assert.Equal(t, "2025-06-01T13:00:00Z", resp.Header.Get(common.HeaderRateLimitReset))
	assert.Empty(t, resp.Header.Get(common.HeaderRetryAfter))
}

func TestAuthGuard_FailedLoginIsObserved(t *testing.T) {
	service := mocks.NewService(t)
	service.EXPECT().Check(mock.Anything, mock.Anything).Return(domain.Decision{
		Allowed: true,
		Type:    domain.DecisionIdentityAllowed,
		ResetAt: resetAt,
	})
	service.EXPECT().Observe(mock.Anything, mock.Anything, fiber.StatusUnauthorized).Return()

	app := newGuardApp(t, service, statusHandler(fiber.StatusUnauthorized))
	resp, err := app.Test(loginRequest(`{"username":"alice"}`))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "user_allowed", resp.Header.Get(common.HeaderRateLimitType))
}

func TestAuthGuard_HandlerErrorStatusIsObserved(t *testing.T) {
	service := mocks.NewService(t)
	service.EXPECT().Check(mock.Anything, mock.Anything).Return(domain.Decision{
		Allowed: true,
		Type:    domain.DecisionAddressAllowed,
	})
	service.EXPECT().Observe(mock.Anything, mock.Anything, fiber.StatusForbidden).Return()

	app := newGuardApp(t, service, func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusForbidden, "forbidden")
	})
	resp, err := app.Test(loginRequest(`{}`))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthGuard_LockoutRejects(t *testing.T) {
	until := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	service := mocks.NewService(t)
	service.EXPECT().Check(mock.Anything, mock.Anything).Return(domain.Decision{
		Allowed:        false,
		Type:           domain.DecisionIdentityLockout,
		ScopeKind:      domain.ScopeIdentity,
		StatusCode:     fiber.StatusTooManyRequests,
		Code:           domain.CodeRateLimitExceeded,
		Message:        "too many failed attempts",
		RetryAfter:     1799500 * time.Millisecond,
		LockoutUntil:   until,
		ViolationCount: 2,
	})

	called := false
	app := newGuardApp(t, service, func(c *fiber.Ctx) error {
		called = true
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(loginRequest(`{"email":"alice@example.com"}`))
	require.NoError(t, err)

	assert.False(t, called)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "user_lockout", resp.Header.Get(common.HeaderRateLimitType))
	assert.Equal(t, "1800", resp.Header.Get(common.HeaderRetryAfter))
	assert.Equal(t, "1800", resp.Header.Get(common.HeaderRateLimitRetryAfter))
	assert.Equal(t, "2025-06-01T12:30:00Z", resp.Header.Get(common.HeaderLockoutUntil))
	assert.Equal(t, "2", resp.Header.Get(common.HeaderViolationCount))
	assert.Empty(t, resp.Header.Get(common.HeaderRateLimitRemaining))

	var body types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.CodeRateLimitExceeded, body.Error.Code)
	assert.Equal(t, "rate_limit_exceeded", body.Error.Type)
	assert.Equal(t, "too many failed attempts", body.Error.Message)
	assert.EqualValues(t, 1800, body.Error.Details["retry_after"])
	assert.EqualValues(t, 2, body.Error.Details["violation_count"])
	assert.Equal(t, "identity", body.Error.Details["scope"])
}

func TestAuthGuard_DenylistedAddressRejects(t *testing.T) {
	service := mocks.NewService(t)
	service.EXPECT().Check(mock.Anything, mock.Anything).Return(domain.Decision{
		Allowed:    false,
		Type:       domain.DecisionAddressDenied,
		ScopeKind:  domain.ScopeAddress,
		StatusCode: fiber.StatusForbidden,
		Code:       domain.CodeAddressDenied,
		Message:    "address is blacklisted",
	})

	app := newGuardApp(t, service, statusHandler(fiber.StatusOK))
	resp, err := app.Test(loginRequest(`{}`))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ip_blacklisted", resp.Header.Get(common.HeaderRateLimitType))
	assert.Empty(t, resp.Header.Get(common.HeaderRetryAfter))

	var body types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.CodeAddressDenied, body.Error.Code)
	assert.Equal(t, "forbidden", body.Error.Type)
}

func TestAuthGuard_DegradedDecisionOmitsCounters(t *testing.T) {
	service := mocks.NewService(t)
	service.EXPECT().Check(mock.Anything, mock.Anything).Return(domain.Decision{
		Allowed:  true,
		Type:     domain.DecisionAddressAllowed,
		Degraded: true,
	})
	service.EXPECT().Observe(mock.Anything, mock.Anything, fiber.StatusOK).Return()

	app := newGuardApp(t, service, statusHandler(fiber.StatusOK))
	resp, err := app.Test(loginRequest(`{}`))
	require.NoError(t, err)

	assert.Equal(t, "ip_allowed", resp.Header.Get(common.HeaderRateLimitType))
	assert.Empty(t, resp.Header.Get(common.HeaderRateLimitRemaining))
	assert.Empty(t, resp.Header.Get(common.HeaderRateLimitReset))
}

func TestAuthGuard_PanicFallsBackToPassThrough(t *testing.T) {
	service := mocks.NewService(t)
	service.EXPECT().
		Check(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ guard.Attempt) domain.Decision {
			panic("unexpected")
		})

	app := newGuardApp(t, service, statusHandler(fiber.StatusOK))
	resp, err := app.Test(loginRequest(`{}`))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(common.HeaderRateLimitType))
	service.AssertNotCalled(t, "Observe", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthGuard_PathVariantsAreGuarded(t *testing.T) {
	paths := []string{
		"/api/v1/auth/%6Cogin",
		"/api/v1/auth/%256Cogin",
		"/api/v1//auth/login",
		"/api/v1/auth/./login",
		"/api/v1/Auth/Login",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			service := mocks.NewService(t)
			service.EXPECT().
				Check(mock.Anything, mock.MatchedBy(func(a guard.Attempt) bool {
					return a.Category == domain.CategoryLogin && a.Path == loginPath
				})).
				Return(domain.Decision{
					Allowed:    false,
					Type:       domain.DecisionAddressLockout,
					ScopeKind:  domain.ScopeAddress,
					StatusCode: fiber.StatusTooManyRequests,
					Code:       domain.CodeRateLimitExceeded,
					RetryAfter: time.Minute,
				})

			called := false
			app := newGuardApp(t, service, func(c *fiber.Ctx) error {
				called = true
				return c.SendStatus(fiber.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, p, strings.NewReader(`{"email":"alice@example.com"}`))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.False(t, called)
			assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
			assert.Equal(t, "ip_lockout", resp.Header.Get(common.HeaderRateLimitType))
		})
	}
}

func TestAuthGuard_PaddedBodyKeepsIdentity(t *testing.T) {
	service := mocks.NewService(t)
	service.EXPECT().
		Check(mock.Anything, mock.MatchedBy(func(a guard.Attempt) bool {
			return a.Identity == "victim@example.com"
		})).
		Return(domain.Decision{Allowed: true, Type: domain.DecisionIdentityAllowed})
	service.EXPECT().Observe(mock.Anything, mock.Anything, fiber.StatusUnauthorized).Return()

	app := newGuardApp(t, service, statusHandler(fiber.StatusUnauthorized))
	body := `{"email":"victim@example.com","password":"guess"` + strings.Repeat(" ", 70000) + `}`
	resp, err := app.Test(loginRequest(body))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "user_allowed", resp.Header.Get(common.HeaderRateLimitType))
}

func TestAuthGuard_OversizedBodyRejected(t *testing.T) {
	classifier := mocks.NewClassifier(t)
	classifier.EXPECT().Classify(http.MethodPost, loginPath).Return(domain.CategoryLogin, true)
	service := mocks.NewService(t)

	called := false
	app := newGuardAppWith(classifier, service, func(c *fiber.Ctx) error {
		called = true
		return c.SendStatus(fiber.StatusOK)
	}, &middleware.AuthGuardOpts{MaxIdentityBodyBytes: 1024})

	body := `{"email":"victim@example.com","pad":"` + strings.Repeat("x", 2048) + `"}`
	resp, err := app.Test(loginRequest(body))
	require.NoError(t, err)

	assert.False(t, called)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	service.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)

	var envelope types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "payload_too_large", envelope.Error.Type)
	assert.Equal(t, "AUTH_PAYLOAD_TOO_LARGE", envelope.Error.Code)
}

func TestAuthGuard_UsesConfiguredClassifier(t *testing.T) {
	classifier := mocks.NewClassifier(t)
	classifier.EXPECT().Classify(http.MethodPost, "/signin").Return(domain.CategoryLogin, true)
	classifier.EXPECT().Classify(http.MethodGet, "/health").Return("", false)

	service := mocks.NewService(t)
	service.EXPECT().
		Check(mock.Anything, mock.MatchedBy(func(a guard.Attempt) bool {
			return a.Category == domain.CategoryLogin && a.Path == "/signin"
		})).
		Return(domain.Decision{Allowed: true, Type: domain.DecisionAddressAllowed, Remaining: 9})
	service.EXPECT().Observe(mock.Anything, mock.Anything, fiber.StatusOK).Return()

	app := newGuardAppWith(classifier, service, statusHandler(fiber.StatusOK), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(`{}`)))
	require.NoError(t, err)
	assert.Equal(t, "9", resp.Header.Get(common.HeaderRateLimitRemaining))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(common.HeaderRateLimitType))
}

package policy_test

import (
	"testing"

	"github.com/NeuralTrust/AuthGuard/pkg/app/policy"
	"github.com/NeuralTrust/AuthGuard/pkg/config"
	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClassifier(t *testing.T, routes []policy.Route) policy.Classifier {
	t.Helper()
	registry, err := policy.NewRegistry(policy.DefaultPolicies())
	require.NoError(t, err)
	return policy.NewClassifier(logrus.New(), routes, registry)
}

func TestClassifier_Classify(t *testing.T) {
	routes := append(policy.DefaultRoutes(),
		policy.Route{Method: "*", Path: "/api/v1/tenants/{tenant}/login", Category: guard.CategoryLogin},
		policy.Route{Method: "post", Path: "/otp/resend/", Category: guard.CategoryOTPRequest},
	)
	classifier := newClassifier(t, routes)

	tests := []struct {
		name         string
		method       string
		path         string
		wantCategory guard.OperationCategory
		wantOK       bool
	}{
		{name: "login", method: "POST", path: "/api/v1/auth/login", wantCategory: guard.CategoryLogin, wantOK: true},
		{name: "trailing slash", method: "POST", path: "/api/v1/auth/login/", wantCategory: guard.CategoryLogin, wantOK: true},
		{name: "lowercase method", method: "post", path: "/api/v1/auth/register", wantCategory: guard.CategoryRegistration, wantOK: true},
		{name: "query string ignored", method: "POST", path: "/api/v1/auth/otp?channel=sms", wantCategory: guard.CategoryOTPRequest, wantOK: true},
		{name: "wrong method", method: "GET", path: "/api/v1/auth/login", wantOK: false},
		{name: "unclassified path", method: "POST", path: "/api/v1/orders", wantOK: false},
		{name: "templated any method", method: "PUT", path: "/api/v1/tenants/acme/login", wantCategory: guard.CategoryLogin, wantOK: true},
		{name: "template does not span segments", method: "POST", path: "/api/v1/tenants/a/b/login", wantOK: false},
		{name: "configured trailing slash", method: "POST", path: "/otp/resend", wantCategory: guard.CategoryOTPRequest, wantOK: true},
		{name: "percent encoded segment", method: "POST", path: "/api/v1/auth/%6Cogin", wantCategory: guard.CategoryLogin, wantOK: true},
		{name: "double encoded segment", method: "POST", path: "/api/v1/auth/%256Cogin", wantCategory: guard.CategoryLogin, wantOK: true},
		{name: "encoded slash", method: "POST", path: "/api/v1/auth%2Flogin", wantCategory: guard.CategoryLogin, wantOK: true},
		{name: "repeated slashes", method: "POST", path: "/api/v1//auth///login", wantCategory: guard.CategoryLogin, wantOK: true},
		{name: "dot segment", method: "POST", path: "/api/v1/auth/./login", wantCategory: guard.CategoryLogin, wantOK: true},
		{name: "parent segment", method: "POST", path: "/api/v1/orders/../auth/login", wantCategory: guard.CategoryLogin, wantOK: true},
		{name: "backslash separator", method: "POST", path: `/api/v1/auth\login`, wantCategory: guard.CategoryLogin, wantOK: true},
		{name: "mixed case path", method: "POST", path: "/API/v1/Auth/LOGIN", wantCategory: guard.CategoryLogin, wantOK: true},
		{name: "mixed case template", method: "POST", path: "/API/v1/Tenants/acme/Login", wantCategory: guard.CategoryLogin, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, ok := classifier.Classify(tt.method, tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCategory, category)
		})
	}
}

func TestClassifier_UnknownCategoryIsPassThrough(t *testing.T) {
	classifier := newClassifier(t, []policy.Route{
		{Method: "POST", Path: "/checkout", Category: "checkout"},
	})

	_, ok := classifier.Classify("POST", "/checkout")
	assert.False(t, ok)
}

func TestCanonicalPath(t *testing.T) {
	tests := map[string]string{
		"":                              "/",
		"/api/v1/auth/login":            "/api/v1/auth/login",
		"/api/v1/auth/%6Cogin?next=%2F": "/api/v1/auth/login",
		"/api/v1/auth/%25256Cogin":      "/api/v1/auth/login",
		"//api//v1/auth/./login/":       "/api/v1/auth/login",
		"/../../api/v1/auth/login":      "/api/v1/auth/login",
		`\api\v1\auth\login`:            "/api/v1/auth/login",
		"/api/v1/auth/%zzlogin":         "/api/v1/auth/%zzlogin",
	}
	for raw, want := range tests {
		assert.Equal(t, want, policy.CanonicalPath(raw), raw)
	}
}

func TestRoutesFromConfig(t *testing.T) {
	assert.Equal(t, policy.DefaultRoutes(), policy.RoutesFromConfig(&config.GuardConfig{}))

	routes := policy.RoutesFromConfig(&config.GuardConfig{
		Routes: []config.RouteConfig{{Method: "POST", Path: "/signin", Category: "login"}},
	})
	require.Len(t, routes, 1)
	assert.Equal(t, guard.CategoryLogin, routes[0].Category)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/", policy.NormalizePath(""))
	assert.Equal(t, "/", policy.NormalizePath("/"))
	assert.Equal(t, "/", policy.NormalizePath("///"))
	assert.Equal(t, "/login", policy.NormalizePath("login/"))
	assert.Equal(t, "/login", policy.NormalizePath("/login?x=1"))
}

package router_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/AuthGuard/pkg/config"
	handlers "github.com/NeuralTrust/AuthGuard/pkg/handlers/http"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/jwt"
	"github.com/NeuralTrust/AuthGuard/pkg/middleware"
	"github.com/NeuralTrust/AuthGuard/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHandler struct {
	status int
}

func (h staticHandler) Handle(c *fiber.Ctx) error {
	return c.SendStatus(h.status)
}

func newTransports(t *testing.T) (*middleware.Transport, *handlers.HandlerTransport, jwt.Manager) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	manager := jwt.NewJwtManager(&config.ServerConfig{SecretKey: "router-secret"})

	ok := staticHandler{status: fiber.StatusOK}
	return &middleware.Transport{
			AdminAuthMiddleware:    middleware.NewAdminAuthMiddleware(logger, manager),
			PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
			RequestIDMiddleware:    middleware.NewRequestIDMiddleware(logger),
			SecurityMiddleware:     middleware.NewSecurityMiddleware(logger),
		}, &handlers.HandlerTransport{
			ForwardedHandler:           ok,
			GetDenylistEntryHandler:    ok,
			CreateDenylistEntryHandler: staticHandler{status: fiber.StatusCreated},
			DeleteDenylistEntryHandler: staticHandler{status: fiber.StatusNoContent},
			GetScopeStatusHandler:      ok,
			UnlockScopeHandler:         staticHandler{status: fiber.StatusNoContent},
			GetVersionHandler:          ok,
			HealthHandler:              ok,
		}, manager
}

func TestAdminRouter(t *testing.T) {
	mw, h, manager := newTransports(t)
	app := fiber.New()
	require.NoError(t, router.NewAdminRouter(mw, h, nil).BuildRoutes(app))

	token, err := manager.CreateToken("ops", 0)
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		token  string
		status int
	}{
		{method: fiber.MethodGet, path: "/health", status: fiber.StatusOK},
		{method: fiber.MethodGet, path: "/version", status: fiber.StatusOK},
		{method: fiber.MethodGet, path: "/metrics", status: fiber.StatusNotFound},
		{method: fiber.MethodGet, path: "/api/v1/denylist/203.0.113.5", status: fiber.StatusUnauthorized},
		{method: fiber.MethodGet, path: "/api/v1/denylist/203.0.113.5", token: token, status: fiber.StatusOK},
		{method: fiber.MethodPost, path: "/api/v1/denylist", token: token, status: fiber.StatusCreated},
		{method: fiber.MethodDelete, path: "/api/v1/denylist/203.0.113.5", token: token, status: fiber.StatusNoContent},
		{method: fiber.MethodGet, path: "/api/v1/scopes/address/203.0.113.5/login", token: token, status: fiber.StatusOK},
		{method: fiber.MethodDelete, path: "/api/v1/lockouts/identity/alice/login", token: token, status: fiber.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestAdminRouter_InvalidTransport(t *testing.T) {
	mw, _, _ := newTransports(t)
	err := router.NewAdminRouter(mw, nil, nil).BuildRoutes(fiber.New())
	assert.ErrorIs(t, err, router.ErrInvalidHandlerTransport)
}

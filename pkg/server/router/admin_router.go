package router

import (
	handlers "github.com/NeuralTrust/AuthGuard/pkg/handlers/http"
	"github.com/NeuralTrust/AuthGuard/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	HealthPath  = "/health"
	VersionPath = "/version"
	MetricsPath = "/metrics"
	SwaggerPath = "/swagger.json"
)

type adminRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
	metricsHandler      fiber.Handler
}

// NewAdminRouter mounts the operator API. metricsHandler may be nil when
// metrics are disabled.
func NewAdminRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
	metricsHandler fiber.Handler,
) ServerRouter {
	return &adminRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		metricsHandler:      metricsHandler,
	}
}

func (r *adminRouter) BuildRoutes(router *fiber.App) error {
	if r.handlerTransport == nil || r.middlewareTransport == nil {
		return ErrInvalidHandlerTransport
	}
	handlerTransport := r.handlerTransport
	middlewareTransport := r.middlewareTransport

	router.Use(
		middlewareTransport.PanicRecoverMiddleware.Middleware(),
		middlewareTransport.RequestIDMiddleware.Middleware(),
		middlewareTransport.SecurityMiddleware.Middleware(),
	)

	router.Static(SwaggerPath, "./docs/swagger.json")
	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: SwaggerPath,
	}))

	router.Get(HealthPath, handlerTransport.HealthHandler.Handle)
	router.Get(VersionPath, handlerTransport.GetVersionHandler.Handle)
	if r.metricsHandler != nil {
		router.Get(MetricsPath, r.metricsHandler)
	}

	v1 := router.Group("/api/v1")
	{
		v1.Use(middlewareTransport.AdminAuthMiddleware.Middleware())

		denylist := v1.Group("/denylist")
		{
			denylist.Post("", handlerTransport.CreateDenylistEntryHandler.Handle)
			denylist.Get("/:ip", handlerTransport.GetDenylistEntryHandler.Handle)
			denylist.Delete("/:ip", handlerTransport.DeleteDenylistEntryHandler.Handle)
		}

		v1.Get("/scopes/:kind/:value/:category", handlerTransport.GetScopeStatusHandler.Handle)
		v1.Delete("/lockouts/:kind/:value/:category", handlerTransport.UnlockScopeHandler.Handle)
	}
	return nil
}

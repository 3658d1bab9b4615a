package router

import (
	"net/http"

	handlers "github.com/NeuralTrust/AuthGuard/pkg/handlers/http"
	"github.com/NeuralTrust/AuthGuard/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

const PingPath = "/__/ping"

type proxyRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
}

func NewProxyRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
) ServerRouter {
	return &proxyRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *proxyRouter) BuildRoutes(router *fiber.App) error {
	if r.handlerTransport == nil || r.middlewareTransport == nil {
		return ErrInvalidHandlerTransport
	}

	router.Get(PingPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"message": "pong",
		})
	})

	router.Use(
		r.middlewareTransport.PanicRecoverMiddleware.Middleware(),
		r.middlewareTransport.RequestIDMiddleware.Middleware(),
		r.middlewareTransport.AuthGuardMiddleware.Middleware(),
		r.handlerTransport.ForwardedHandler.Handle,
	)
	return nil
}

package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Proxy
	ForwardedHandler Handler

	// Denylist
	GetDenylistEntryHandler    Handler
	CreateDenylistEntryHandler Handler
	DeleteDenylistEntryHandler Handler

	// Scopes
	GetScopeStatusHandler Handler
	UnlockScopeHandler    Handler

	// System
	GetVersionHandler Handler
	HealthHandler     Handler
}

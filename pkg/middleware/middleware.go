package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	AuthGuardMiddleware    Middleware
	AdminAuthMiddleware    Middleware
	PanicRecoverMiddleware Middleware
	RequestIDMiddleware    Middleware
	SecurityMiddleware     Middleware
}

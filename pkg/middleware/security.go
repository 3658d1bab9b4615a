package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type securityMiddleware struct {
	logger *logrus.Logger
}

// NewSecurityMiddleware sets the response hardening headers of the admin API.
// Responses carry denylist and lockout state, so they must never be cached.
func NewSecurityMiddleware(
	logger *logrus.Logger,
) Middleware {
	return &securityMiddleware{
		logger: logger,
	}
}

func (m *securityMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("Referrer-Policy", "no-referrer")
		c.Set("Cache-Control", "no-store")
		return c.Next()
	}
}

package middleware

import (
	"github.com/NeuralTrust/AuthGuard/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxRequestIDLength = 128

type requestIDMiddleware struct {
	logger *logrus.Logger
}

func NewRequestIDMiddleware(logger *logrus.Logger) Middleware {
	return &requestIDMiddleware{logger: logger}
}

func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(common.RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
			c.Request().Header.Set(common.RequestIDHeader, requestID)
		}
		c.Locals(common.RequestIDKey, requestID)
		c.Set(common.RequestIDHeader, requestID)
		return c.Next()
	}
}

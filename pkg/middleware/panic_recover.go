package middleware

import (
	"fmt"

	"github.com/NeuralTrust/AuthGuard/pkg/common"
	"github.com/NeuralTrust/AuthGuard/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type panicRecoverMiddleware struct {
	logger *logrus.Logger
}

func NewPanicRecoverMiddleware(logger *logrus.Logger) Middleware {
	return &panicRecoverMiddleware{logger: logger}
}

func (m *panicRecoverMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				requestID, _ := c.Locals(common.RequestIDKey).(string)
				m.logger.WithFields(logrus.Fields{
					"error":      fmt.Sprintf("%v", r),
					"path":       c.Path(),
					"method":     c.Method(),
					"request_id": requestID,
				}).Error("HTTP server panic recovered")

				err = c.Status(fiber.StatusInternalServerError).JSON(types.ApiError{
					Error: "internal server error",
				})
			}
		}()

		return c.Next()
	}
}

package http

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const healthPingTimeout = time.Second

type healthHandler struct {
	logger      *logrus.Logger
	redisClient *redis.Client
}

func NewHealthHandler(logger *logrus.Logger, redisClient *redis.Client) Handler {
	return &healthHandler{
		logger:      logger,
		redisClient: redisClient,
	}
}

// Handle always answers 200. Status is "degraded" while Redis is unreachable.
func (h *healthHandler) Handle(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), healthPingTimeout)
	defer cancel()

	status := "ok"
	redisStatus := "ok"
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.logger.WithError(err).Warn("health check: redis ping failed")
		status = "degraded"
		redisStatus = err.Error()
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": status,
		"redis":  redisStatus,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

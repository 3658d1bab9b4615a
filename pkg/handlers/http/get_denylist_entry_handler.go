package http

import (
	appGuard "github.com/NeuralTrust/AuthGuard/pkg/app/guard"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getDenylistEntryHandler struct {
	logger        *logrus.Logger
	administrator appGuard.Administrator
}

func NewGetDenylistEntryHandler(logger *logrus.Logger, administrator appGuard.Administrator) Handler {
	return &getDenylistEntryHandler{
		logger:        logger,
		administrator: administrator,
	}
}

// Handle @Summary Get a denylist entry
// @Description Returns the active denylist entry for a network address
// @Tags Denylist
// @Param Authorization header string true "Authorization token"
// @Param ip path string true "Network address"
// @Produce json
// @Success 200 {object} guard.DenylistEntry "Denylist entry"
// @Failure 404 {object} map[string]interface{} "Address is not denylisted"
// @Router /api/v1/denylist/{ip} [get]
func (h *getDenylistEntryHandler) Handle(c *fiber.Ctx) error {
	address := c.Params("ip")

	entry, err := h.administrator.GetDenylistEntry(c.Context(), address)
	if err != nil {
		if errorStatus(err) >= fiber.StatusInternalServerError {
			h.logger.WithError(err).WithField("address", address).Error("failed to get denylist entry")
		}
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entry)
}

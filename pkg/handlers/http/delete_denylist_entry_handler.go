package http

import (
	appGuard "github.com/NeuralTrust/AuthGuard/pkg/app/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type deleteDenylistEntryHandler struct {
	logger        *logrus.Logger
	administrator appGuard.Administrator
}

func NewDeleteDenylistEntryHandler(logger *logrus.Logger, administrator appGuard.Administrator) Handler {
	return &deleteDenylistEntryHandler{
		logger:        logger,
		administrator: administrator,
	}
}

// Handle @Summary Remove a denylist entry
// @Tags Denylist
// @Param Authorization header string true "Authorization token"
// @Param ip path string true "Network address"
// @Success 204 "Entry removed"
// @Failure 404 {object} map[string]interface{} "Address is not denylisted"
// @Router /api/v1/denylist/{ip} [delete]
func (h *deleteDenylistEntryHandler) Handle(c *fiber.Ctx) error {
	address := c.Params("ip")

	if err := h.administrator.RemoveDenylistEntry(c.Context(), address); err != nil {
		if errorStatus(err) >= fiber.StatusInternalServerError {
			h.logger.WithError(err).WithField("address", address).Error("failed to remove denylist entry")
		}
		return errorResponse(c, err)
	}

	subject, _ := c.Locals(common.AdminSubjectKey).(string)
	h.logger.WithFields(logrus.Fields{
		"address":  address,
		"operator": subject,
	}).Info("denylist entry removed by operator")

	return c.SendStatus(fiber.StatusNoContent)
}

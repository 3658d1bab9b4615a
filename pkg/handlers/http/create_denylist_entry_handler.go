package http

import (
	appGuard "github.com/NeuralTrust/AuthGuard/pkg/app/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/common"
	"github.com/NeuralTrust/AuthGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/AuthGuard/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createDenylistEntryHandler struct {
	logger        *logrus.Logger
	administrator appGuard.Administrator
}

func NewCreateDenylistEntryHandler(logger *logrus.Logger, administrator appGuard.Administrator) Handler {
	return &createDenylistEntryHandler{
		logger:        logger,
		administrator: administrator,
	}
}

// Handle @Summary Denylist a network address
// @Description Blocks every classified route for the address during the given number of days
// @Tags Denylist
// @Param Authorization header string true "Authorization token"
// @Accept json
// @Produce json
// @Param request body request.CreateDenylistEntryRequest true "Denylist request"
// @Success 201 {object} guard.DenylistEntry "Denylist entry created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/denylist [post]
func (h *createDenylistEntryHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateDenylistEntryRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to parse denylist request")
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiError{Error: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiError{Error: err.Error()})
	}

	entry, err := h.administrator.DenyAddress(c.Context(), req.IP, req.Days, req.Reason)
	if err != nil {
		if errorStatus(err) >= fiber.StatusInternalServerError {
			h.logger.WithError(err).WithField("address", req.IP).Error("failed to denylist address")
		}
		return errorResponse(c, err)
	}

	subject, _ := c.Locals(common.AdminSubjectKey).(string)
	h.logger.WithFields(logrus.Fields{
		"address":    entry.Address,
		"expires_at": entry.ExpiresAt,
		"operator":   subject,
	}).Info("address denylisted by operator")

	return c.Status(fiber.StatusCreated).JSON(entry)
}

package http

import (
	appGuard "github.com/NeuralTrust/AuthGuard/pkg/app/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/common"
	"github.com/NeuralTrust/AuthGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/AuthGuard/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type unlockScopeHandler struct {
	logger        *logrus.Logger
	administrator appGuard.Administrator
}

func NewUnlockScopeHandler(logger *logrus.Logger, administrator appGuard.Administrator) Handler {
	return &unlockScopeHandler{
		logger:        logger,
		administrator: administrator,
	}
}

// Handle @Summary Unlock a guard scope
// @Description Clears the lockout and failure window. The violation count is kept.
// @Tags Scopes
// @Param Authorization header string true "Authorization token"
// @Param kind path string true "address or identity"
// @Param value path string true "Network address or identity"
// @Param category path string true "Operation category"
// @Success 204 "Scope unlocked"
// @Router /api/v1/lockouts/{kind}/{value}/{category} [delete]
func (h *unlockScopeHandler) Handle(c *fiber.Ctx) error {
	req := request.ScopeRequest{
		Kind:     c.Params("kind"),
		Value:    c.Params("value"),
		Category: c.Params("category"),
	}
	scope, err := req.Scope()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiError{Error: err.Error()})
	}

	if err := h.administrator.Unlock(c.Context(), scope); err != nil {
		if errorStatus(err) >= fiber.StatusInternalServerError {
			h.logger.WithError(err).WithField("category", scope.Category).Error("failed to unlock scope")
		}
		return errorResponse(c, err)
	}

	subject, _ := c.Locals(common.AdminSubjectKey).(string)
	h.logger.WithFields(logrus.Fields{
		"kind":     scope.Kind,
		"category": scope.Category,
		"operator": subject,
	}).Info("scope unlock requested")

	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	appGuard "github.com/NeuralTrust/AuthGuard/pkg/app/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/AuthGuard/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getScopeStatusHandler struct {
	logger        *logrus.Logger
	administrator appGuard.Administrator
}

func NewGetScopeStatusHandler(logger *logrus.Logger, administrator appGuard.Administrator) Handler {
	return &getScopeStatusHandler{
		logger:        logger,
		administrator: administrator,
	}
}

// Handle @Summary Inspect a guard scope
// @Description Returns failures in the current window, the active lockout and the violation count
// @Tags Scopes
// @Param Authorization header string true "Authorization token"
// @Param kind path string true "address or identity"
// @Param value path string true "Network address or identity"
// @Param category path string true "Operation category"
// @Produce json
// @Success 200 {object} guard.ScopeStatus "Scope status"
// @Router /api/v1/scopes/{kind}/{value}/{category} [get]
func (h *getScopeStatusHandler) Handle(c *fiber.Ctx) error {
	req := request.ScopeRequest{
		Kind:     c.Params("kind"),
		Value:    c.Params("value"),
		Category: c.Params("category"),
	}
	scope, err := req.Scope()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiError{Error: err.Error()})
	}

	status, err := h.administrator.ScopeStatus(c.Context(), scope)
	if err != nil {
		if errorStatus(err) >= fiber.StatusInternalServerError {
			h.logger.WithError(err).WithField("category", scope.Category).Error("failed to get scope status")
		}
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(status)
}

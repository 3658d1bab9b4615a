package http

import (
	"errors"

	appGuard "github.com/NeuralTrust/AuthGuard/pkg/app/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/types"
	"github.com/gofiber/fiber/v2"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, appGuard.ErrInvalidAddress),
		errors.Is(err, appGuard.ErrInvalidDuration),
		errors.Is(err, guard.ErrUnknownCategory):
		return fiber.StatusBadRequest
	case errors.Is(err, guard.ErrEntryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, guard.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return c.Status(status).JSON(types.ApiError{Error: message})
}

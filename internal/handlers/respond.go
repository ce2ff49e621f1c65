package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/services"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

// fail translates service and storage sentinels into the HTTP error
// taxonomy. Transaction failures are logged with their root cause and
// reported as opaque 500s.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, services.ErrJobMissing):
		return respond(c, fiber.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return respond(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotAdmin),
		errors.Is(err, services.ErrNotOwner),
		errors.Is(err, services.ErrNotAuthor),
		errors.Is(err, services.ErrProtectedUser):
		return respond(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return respond(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrDuplicateEmail),
		errors.Is(err, storage.ErrConstraintViolation):
		return respond(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidInvitation),
		errors.Is(err, services.ErrAlreadyApplied),
		errors.Is(err, services.ErrNoProfile),
		errors.Is(err, services.ErrFilteredOut),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrEmptySubmission),
		errors.Is(err, services.ErrValidation):
		return respond(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrTransactionFailure):
		slog.Error("transaction failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return respond(c, fiber.StatusInternalServerError, "Internal server error")
	default:
		// Anything not in the taxonomy is a server-side failure. The cause
		// is logged, never sent to the client.
		slog.Error("unhandled handler error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return respond(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func badBody(c *fiber.Ctx) error {
	return respond(c, fiber.StatusBadRequest, "Invalid request body")
}

func idParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}

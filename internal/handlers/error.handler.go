package handlers

import (
	"errors"

	"fleetcheck/config"
	"fleetcheck/internal/apperrors"
	"fleetcheck/internal/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the single responder for every failure path. Handlers
// pass typed errors upward; this maps kind to status and envelope.
// Production hides internal causes, development exposes them.
func ErrorHandler(config config.Config) fiber.ErrorHandler {
	log := logger.New("handlers").Function("ErrorHandler")

	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return respondError(c, fiberErr.Code, fiberErr.Message, "", config)
		}

		appErr := apperrors.From(err)
		if appErr.Kind == apperrors.KindInternal {
			log.Er("internal error", appErr, "path", c.Path())
			return respondError(c, appErr.Status(), appErr.Message, appErr.Error(), config)
		}

		return respondError(c, appErr.Status(), appErr.Message, "", config)
	}
}

func respondError(c *fiber.Ctx, status int, message, detail string, config config.Config) error {
	envelope := fiber.Map{
		"status":  statusWord(status),
		"message": message,
	}

	if detail != "" && config.IsDevelopment() {
		envelope["error"] = detail
	}

	return c.Status(status).JSON(envelope)
}

func statusWord(status int) string {
	if status >= fiber.StatusInternalServerError {
		return "error"
	}
	return "fail"
}

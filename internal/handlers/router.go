package handlers

import (
	"fmt"

	"fleetcheck/internal/app"
	"fleetcheck/internal/apperrors"
	"fleetcheck/internal/handlers/middleware"
	"fleetcheck/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) error {
	api := router.Group("/api/v1")

	HealthHandler(api)
	NewDriverHandler(*app, api).Register()
	NewVehicleHandler(*app, api).Register()
	NewInspectionHandler(*app, api).Register()
	NewAuthHandler(*app, api).Register()
	NewAdminHandler(*app, api).Register()

	// Unmatched routes fall through to here.
	router.Use(func(c *fiber.Ctx) error {
		return apperrors.NotFound(
			fmt.Sprintf("Can't find %s %s on this server", c.Method(), c.OriginalURL()))
	})

	return nil
}

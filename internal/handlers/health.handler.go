package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func HealthHandler(router fiber.Router) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success"})
	})
}

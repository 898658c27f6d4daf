package handlers

import (
	"fleetcheck/internal/app"
	"fleetcheck/internal/apperrors"
	authController "fleetcheck/internal/controllers/auth"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Handler
	controller *authController.AuthController
}

func NewAuthHandler(app app.App, router fiber.Router) *AuthHandler {
	log := logger.New("handlers").File("auth_handler")
	return &AuthHandler{
		controller: app.AuthController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AuthHandler) Register() {
	auth := h.router.Group("/auth")
	auth.Post("/admin/login", h.adminLogin)
	auth.Post("/driver/login", h.driverLogin)
}

func (h *AuthHandler) adminLogin(c *fiber.Ctx) error {
	var request AdminLoginRequest
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Validation("invalid request body")
	}

	token, err := h.controller.AdminLogin(c.Context(), &request)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"token":  token,
	})
}

func (h *AuthHandler) driverLogin(c *fiber.Ctx) error {
	var request DriverLoginRequest
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Validation("invalid request body")
	}

	token, driver, err := h.controller.DriverLogin(c.Context(), &request)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"token":  token,
		"data":   fiber.Map{"driver": driver},
	})
}

package handlers

import (
	"fleetcheck/internal/app"
	"fleetcheck/internal/apperrors"
	adminController "fleetcheck/internal/controllers/admin"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Handler
	controller *adminController.AdminController
}

func NewAdminHandler(app app.App, router fiber.Router) *AdminHandler {
	log := logger.New("handlers").File("admin_handler")
	return &AdminHandler{
		controller: app.AdminController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AdminHandler) Register() {
	admin := h.router.Group("/admin")
	admin.Post("/create", h.createAdmin)
}

func (h *AdminHandler) createAdmin(c *fiber.Ctx) error {
	var request CreateAdminRequest
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Validation("invalid request body")
	}

	adminID, err := h.controller.Create(c.Context(), &request)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"adminId": adminID},
	})
}

package handlers

import (
	"fleetcheck/internal/app"
	"fleetcheck/internal/apperrors"
	driverController "fleetcheck/internal/controllers/driver"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DriverHandler struct {
	Handler
	controller *driverController.DriverController
}

func NewDriverHandler(app app.App, router fiber.Router) *DriverHandler {
	log := logger.New("handlers").File("driver_handler")
	return &DriverHandler{
		controller: app.DriverController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *DriverHandler) Register() {
	drivers := h.router.Group("/drivers")
	drivers.Get("/", h.getDrivers)
	drivers.Post("/register", h.registerDriver)
	drivers.Get("/:id", h.getDriver)
	drivers.Patch("/:id", h.updateDriver)
	drivers.Delete("/:id", h.deleteDriver)
}

func (h *DriverHandler) registerDriver(c *fiber.Ctx) error {
	var request RegisterDriverRequest
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Validation("invalid request body")
	}

	driver, err := h.controller.Register(c.Context(), &request)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"driver": driver},
	})
}

func (h *DriverHandler) getDrivers(c *fiber.Ctx) error {
	drivers, err := h.controller.GetAll(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(drivers),
		"data":    fiber.Map{"drivers": drivers},
	})
}

func (h *DriverHandler) getDriver(c *fiber.Ctx) error {
	driver, err := h.controller.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"driver": driver},
	})
}

func (h *DriverHandler) updateDriver(c *fiber.Ctx) error {
	var request UpdateDriverRequest
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Validation("invalid request body")
	}

	driver, err := h.controller.Update(c.Context(), c.Params("id"), &request)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"driver": driver},
	})
}

func (h *DriverHandler) deleteDriver(c *fiber.Ctx) error {
	if err := h.controller.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

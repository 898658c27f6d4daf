package handlers

import (
	"fleetcheck/internal/app"
	"fleetcheck/internal/apperrors"
	inspectionController "fleetcheck/internal/controllers/inspection"
	vehicleController "fleetcheck/internal/controllers/vehicle"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"

	"github.com/gofiber/fiber/v2"
)

type VehicleHandler struct {
	Handler
	controller     *vehicleController.VehicleController
	inspectionCtrl *inspectionController.InspectionController
}

func NewVehicleHandler(app app.App, router fiber.Router) *VehicleHandler {
	log := logger.New("handlers").File("vehicle_handler")
	return &VehicleHandler{
		controller:     app.VehicleController,
		inspectionCtrl: app.InspectionController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *VehicleHandler) Register() {
	vehicles := h.router.Group("/vehicles")
	vehicles.Get("/", h.getVehicles)
	vehicles.Post("/create", h.createVehicle)
	vehicles.Get("/:id", h.getVehicle)
	vehicles.Patch("/:id", h.updateVehicle)
	vehicles.Delete("/:id", h.deleteVehicle)
	vehicles.Get("/:id/inspections", h.getVehicleInspections)
}

func (h *VehicleHandler) createVehicle(c *fiber.Ctx) error {
	var request VehicleRequest
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Validation("invalid request body")
	}

	vehicle, err := h.controller.Create(c.Context(), &request)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"vehicle": vehicle},
	})
}

func (h *VehicleHandler) getVehicles(c *fiber.Ctx) error {
	vehicles, err := h.controller.GetAll(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(vehicles),
		"data":    fiber.Map{"vehicles": vehicles},
	})
}

func (h *VehicleHandler) getVehicle(c *fiber.Ctx) error {
	vehicle, err := h.controller.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"vehicle": vehicle},
	})
}

func (h *VehicleHandler) updateVehicle(c *fiber.Ctx) error {
	var request VehicleRequest
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Validation("invalid request body")
	}

	vehicle, err := h.controller.Update(c.Context(), c.Params("id"), &request)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"vehicle": vehicle},
	})
}

func (h *VehicleHandler) deleteVehicle(c *fiber.Ctx) error {
	if err := h.controller.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *VehicleHandler) getVehicleInspections(c *fiber.Ctx) error {
	vehicle, inspections, err := h.inspectionCtrl.GetVehicleHistory(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"vehicle":     vehicle,
			"inspections": inspections,
		},
	})
}

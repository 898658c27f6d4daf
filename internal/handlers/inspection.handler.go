package handlers

import (
	"fleetcheck/internal/app"
	"fleetcheck/internal/apperrors"
	inspectionController "fleetcheck/internal/controllers/inspection"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"

	"github.com/gofiber/fiber/v2"
)

type InspectionHandler struct {
	Handler
	controller *inspectionController.InspectionController
}

func NewInspectionHandler(app app.App, router fiber.Router) *InspectionHandler {
	log := logger.New("handlers").File("inspection_handler")
	return &InspectionHandler{
		controller: app.InspectionController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *InspectionHandler) Register() {
	inspections := h.router.Group("/inspections", h.middleware.Protect())
	inspections.Post("/daily", h.createDailyInspection)
	inspections.Post("/create", h.createDetailedInspection)
	inspections.Get("/today", h.getTodaysInspections)
	inspections.Get("/", h.getInspections)
	inspections.Get("/:id", h.getInspection)
}

func (h *InspectionHandler) createDailyInspection(c *fiber.Ctx) error {
	var request CreateDailyInspectionRequest
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Validation("invalid request body")
	}

	inspectionID, err := h.controller.CreateDaily(c.Context(), &request)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"inspection_id": inspectionID,
			"message":       "Daily inspection logged successfully",
		},
	})
}

func (h *InspectionHandler) createDetailedInspection(c *fiber.Ctx) error {
	var request CreateDetailedInspectionRequest
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Validation("invalid request body")
	}

	inspectionID, err := h.controller.CreateDetailed(c.Context(), &request)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"inspection_id": inspectionID,
			"message":       "Full inspection recorded successfully",
		},
	})
}

func (h *InspectionHandler) getTodaysInspections(c *fiber.Ctx) error {
	inspections, err := h.controller.GetToday(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(inspections),
		"data":    fiber.Map{"inspections": inspections},
	})
}

func (h *InspectionHandler) getInspections(c *fiber.Ctx) error {
	inspections, err := h.controller.GetRecent(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(inspections),
		"data":    fiber.Map{"inspections": inspections},
	})
}

func (h *InspectionHandler) getInspection(c *fiber.Ctx) error {
	detail, err := h.controller.GetDetail(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   detail,
	})
}

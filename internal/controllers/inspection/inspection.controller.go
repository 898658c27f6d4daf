package inspectionController

import (
	"context"
	"errors"
	"time"

	"fleetcheck/internal/apperrors"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"
	"fleetcheck/internal/repositories"
	"fleetcheck/internal/services"
	"fleetcheck/internal/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	storeTimeout = 5 * time.Second
	historyLimit = 30
	recentLimit  = 100
)

type InspectionController struct {
	inspectionRepo     repositories.InspectionRepository
	driverRepo         repositories.DriverRepository
	vehicleRepo        repositories.VehicleRepository
	transactionService *services.TransactionService
	keyLock            *services.KeyLockService
	log                logger.Logger
}

func New(
	inspectionRepo repositories.InspectionRepository,
	driverRepo repositories.DriverRepository,
	vehicleRepo repositories.VehicleRepository,
	transactionService *services.TransactionService,
	keyLock *services.KeyLockService,
) *InspectionController {
	return &InspectionController{
		inspectionRepo:     inspectionRepo,
		driverRepo:         driverRepo,
		vehicleRepo:        vehicleRepo,
		transactionService: transactionService,
		keyLock:            keyLock,
		log:                logger.New("InspectionController"),
	}
}

// CreateDetailed creates one inspection aggregate: the parent row plus a
// child row per submitted checklist section, all inside one transaction.
// On any failure nothing survives.
func (c *InspectionController) CreateDetailed(ctx context.Context, request *CreateDetailedInspectionRequest) (string, error) {
	log := c.log.Function("CreateDetailed")

	if request.DriverID == "" || request.VehicleID == "" {
		return "", apperrors.Validation("Driver ID and Vehicle ID are required")
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := c.checkPairExists(ctx, request.DriverID, request.VehicleID); err != nil {
		return "", err
	}

	// Hold the pair lock across the duplicate check and the write so two
	// concurrent requests cannot both pass the check.
	unlock := c.keyLock.Lock(request.DriverID + ":" + request.VehicleID)
	defer unlock()

	if err := c.checkNoInspectionToday(ctx, request.DriverID, request.VehicleID); err != nil {
		return "", err
	}

	inspectionID, err := utils.NewID(utils.DetailedInspectionIDLength)
	if err != nil {
		return "", apperrors.Internal("Inspection creation failed", err)
	}

	err = c.transactionService.Execute(ctx, func(txCtx context.Context) error {
		if err := c.inspectionRepo.Create(txCtx, &Inspection{
			InspectionID: inspectionID,
			DriverID:     request.DriverID,
			VehicleID:    request.VehicleID,
		}); err != nil {
			return err
		}

		return c.inspectionRepo.CreateSections(txCtx, buildSections(inspectionID, request))
	})
	if err != nil {
		log.Er("inspection transaction rolled back", err, "inspectionID", inspectionID)
		return "", apperrors.Internal("Inspection creation failed", err)
	}

	return inspectionID, nil
}

// CreateDaily is the quick-log variant: same preconditions, parent row
// only, single statement.
func (c *InspectionController) CreateDaily(ctx context.Context, request *CreateDailyInspectionRequest) (string, error) {
	if request.DriverID == "" || request.VehicleID == "" {
		return "", apperrors.Validation("Driver ID and Vehicle ID are required")
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := c.checkPairExists(ctx, request.DriverID, request.VehicleID); err != nil {
		return "", err
	}

	unlock := c.keyLock.Lock(request.DriverID + ":" + request.VehicleID)
	defer unlock()

	if err := c.checkNoInspectionToday(ctx, request.DriverID, request.VehicleID); err != nil {
		return "", err
	}

	inspectionID, err := utils.NewID(utils.DailyInspectionIDLength)
	if err != nil {
		return "", apperrors.Internal("Inspection creation failed", err)
	}

	if err := c.inspectionRepo.Create(ctx, &Inspection{
		InspectionID: inspectionID,
		DriverID:     request.DriverID,
		VehicleID:    request.VehicleID,
	}); err != nil {
		return "", apperrors.Internal("Inspection creation failed", err)
	}

	return inspectionID, nil
}

func (c *InspectionController) checkPairExists(ctx context.Context, driverID, vehicleID string) error {
	var driverExists, vehicleExists bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		driverExists, err = c.driverRepo.Exists(gctx, driverID)
		return err
	})
	g.Go(func() (err error) {
		vehicleExists, err = c.vehicleRepo.Exists(gctx, vehicleID)
		return err
	})
	if err := g.Wait(); err != nil {
		return apperrors.Internal("Inspection creation failed", err)
	}

	if !driverExists || !vehicleExists {
		return apperrors.NotFound("Driver or vehicle not found")
	}

	return nil
}

func (c *InspectionController) checkNoInspectionToday(ctx context.Context, driverID, vehicleID string) error {
	exists, err := c.inspectionRepo.ExistsForDay(ctx, driverID, vehicleID, time.Now())
	if err != nil {
		return apperrors.Internal("Inspection creation failed", err)
	}

	if exists {
		return apperrors.Conflict("Daily inspection already logged for this vehicle")
	}

	return nil
}

// buildSections turns the submitted checklist sections into pending child
// rows. Absent sections contribute nothing; an empty result is valid.
func buildSections(inspectionID string, request *CreateDetailedInspectionRequest) []any {
	var sections []any

	if request.EngineChecks != nil {
		sections = append(sections, &EngineCheck{
			InspectionID:   inspectionID,
			EngineOilLevel: request.EngineChecks.EngineOilLevel,
			EngineOilColor: request.EngineChecks.EngineOilColor,
			BrakeOilLevel:  request.EngineChecks.BrakeOilLevel,
		})
	}

	if request.ACStatus != nil {
		sections = append(sections, &ACStatus{
			InspectionID: inspectionID,
			Status:       request.ACStatus.Status,
		})
	}

	for _, damage := range request.BodyDamages {
		sections = append(sections, &BodyDamage{
			InspectionID: inspectionID,
			DamageType:   damage.DamageType,
			Location:     damage.Location,
			IsRecent:     damage.IsRecent,
		})
	}

	if request.TireChecks != nil {
		sections = append(sections, &TireCheck{
			InspectionID:        inspectionID,
			FrontLeftCondition:  request.TireChecks.FrontLeftCondition,
			FrontRightCondition: request.TireChecks.FrontRightCondition,
			BackLeftCondition:   request.TireChecks.BackLeftCondition,
			BackRightCondition:  request.TireChecks.BackRightCondition,
		})
	}

	if request.GroundChecks != nil {
		sections = append(sections, &GroundCheck{
			InspectionID: inspectionID,
			OilOnFloor:   request.GroundChecks.OilOnFloor,
			OilOnTires:   request.GroundChecks.OilOnTires,
		})
	}

	if request.LightChecks != nil {
		sections = append(sections, &LightCheck{
			InspectionID: inspectionID,
			FullLight:    request.LightChecks.FullLight,
			DimLight:     request.LightChecks.DimLight,
			BrakeLight:   request.LightChecks.BrakeLight,
		})
	}

	if request.SeatbeltChecks != nil {
		sections = append(sections, &SeatbeltCheck{
			InspectionID: inspectionID,
			FrontLeft:    request.SeatbeltChecks.FrontLeft,
			FrontRight:   request.SeatbeltChecks.FrontRight,
			BackLeft:     request.SeatbeltChecks.BackLeft,
			BackRight:    request.SeatbeltChecks.BackRight,
			BackMiddle:   request.SeatbeltChecks.BackMiddle,
		})
	}

	if request.ToolsChecks != nil {
		sections = append(sections, &ToolsCheck{
			InspectionID:     inspectionID,
			SpareTire:        request.ToolsChecks.SpareTire,
			JackWheelSpanner: request.ToolsChecks.JackWheelSpanner,
			CautionTriangle:  request.ToolsChecks.CautionTriangle,
			FireExtinguisher: request.ToolsChecks.FireExtinguisher,
		})
	}

	return sections
}

// GetDetail assembles the inspection aggregate: the parent row first, then
// all eight checklist sections fetched concurrently. One failed lookup
// fails the whole read.
func (c *InspectionController) GetDetail(ctx context.Context, inspectionID string) (*InspectionDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	detail, err := c.inspectionRepo.GetDetailHeader(ctx, inspectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Inspection not found")
		}
		return nil, apperrors.Internal("failed to get inspection", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		detail.EngineChecks, err = c.inspectionRepo.GetEngineCheck(gctx, inspectionID)
		return err
	})
	g.Go(func() (err error) {
		detail.ACStatus, err = c.inspectionRepo.GetACStatus(gctx, inspectionID)
		return err
	})
	g.Go(func() (err error) {
		detail.BodyDamages, err = c.inspectionRepo.GetBodyDamages(gctx, inspectionID)
		return err
	})
	g.Go(func() (err error) {
		detail.TireChecks, err = c.inspectionRepo.GetTireCheck(gctx, inspectionID)
		return err
	})
	g.Go(func() (err error) {
		detail.GroundChecks, err = c.inspectionRepo.GetGroundCheck(gctx, inspectionID)
		return err
	})
	g.Go(func() (err error) {
		detail.LightChecks, err = c.inspectionRepo.GetLightCheck(gctx, inspectionID)
		return err
	})
	g.Go(func() (err error) {
		detail.SeatbeltChecks, err = c.inspectionRepo.GetSeatbeltCheck(gctx, inspectionID)
		return err
	})
	g.Go(func() (err error) {
		detail.ToolsCheck, err = c.inspectionRepo.GetToolsCheck(gctx, inspectionID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Internal("failed to get inspection", err)
	}

	if detail.BodyDamages == nil {
		detail.BodyDamages = []BodyDamage{}
	}

	return detail, nil
}

// GetVehicleHistory returns the vehicle's most recent inspections, newest
// first, capped at a fixed page size.
func (c *InspectionController) GetVehicleHistory(ctx context.Context, vehicleID string) (*VehicleSummary, []InspectionSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	vehicle, err := c.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NotFound("No vehicle found with that ID")
		}
		return nil, nil, apperrors.Internal("failed to get vehicle", err)
	}

	inspections, err := c.inspectionRepo.GetVehicleHistory(ctx, vehicleID, historyLimit)
	if err != nil {
		return nil, nil, apperrors.Internal("failed to get vehicle history", err)
	}

	if inspections == nil {
		inspections = []InspectionSummary{}
	}

	summary := &VehicleSummary{Make: vehicle.Make, Model: vehicle.Model, Year: vehicle.Year}

	return summary, inspections, nil
}

func (c *InspectionController) GetToday(ctx context.Context) ([]TodayInspection, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	inspections, err := c.inspectionRepo.GetToday(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to get today's inspections", err)
	}

	if inspections == nil {
		inspections = []TodayInspection{}
	}

	return inspections, nil
}

func (c *InspectionController) GetRecent(ctx context.Context) ([]TodayInspection, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	inspections, err := c.inspectionRepo.GetRecent(ctx, recentLimit)
	if err != nil {
		return nil, apperrors.Internal("failed to get inspections", err)
	}

	if inspections == nil {
		inspections = []TodayInspection{}
	}

	return inspections, nil
}

package vehicleController

import (
	"context"
	"errors"
	"time"

	"fleetcheck/internal/apperrors"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"
	"fleetcheck/internal/repositories"
	"fleetcheck/internal/utils"

	"gorm.io/gorm"
)

const storeTimeout = 5 * time.Second

type VehicleController struct {
	vehicleRepo repositories.VehicleRepository
	log         logger.Logger
}

func New(vehicleRepo repositories.VehicleRepository) *VehicleController {
	return &VehicleController{
		vehicleRepo: vehicleRepo,
		log:         logger.New("VehicleController"),
	}
}

func (c *VehicleController) Create(ctx context.Context, request *VehicleRequest) (*Vehicle, error) {
	log := c.log.Function("Create")

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	vehicleID, err := utils.NewID(utils.VehicleIDLength)
	if err != nil {
		return nil, apperrors.Internal("failed to create vehicle", err)
	}

	vehicle := &Vehicle{
		VehicleID:          vehicleID,
		RegistrationNumber: request.RegistrationNumber,
		Make:               request.Make,
		Model:              request.Model,
		Year:               request.Year,
		VIN:                request.VIN,
	}

	if err := c.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, apperrors.Internal("failed to create vehicle", err)
	}

	log.Info("created vehicle", "vehicleID", vehicle.VehicleID)

	return vehicle, nil
}

func (c *VehicleController) GetAll(ctx context.Context) ([]Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	vehicles, err := c.vehicleRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to get vehicles", err)
	}

	if vehicles == nil {
		vehicles = []Vehicle{}
	}

	return vehicles, nil
}

func (c *VehicleController) Get(ctx context.Context, id string) (*Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	vehicle, err := c.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("No vehicle found with that ID")
		}
		return nil, apperrors.Internal("failed to get vehicle", err)
	}

	return vehicle, nil
}

func (c *VehicleController) Update(ctx context.Context, id string, request *VehicleRequest) (*Vehicle, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	err := c.vehicleRepo.Update(ctx, &Vehicle{
		VehicleID:          id,
		RegistrationNumber: request.RegistrationNumber,
		Make:               request.Make,
		Model:              request.Model,
		Year:               request.Year,
		VIN:                request.VIN,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("No vehicle found with that ID")
		}
		return nil, apperrors.Internal("failed to update vehicle", err)
	}

	return c.Get(ctx, id)
}

func (c *VehicleController) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := c.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("No vehicle found with that ID")
		}
		return apperrors.Internal("failed to delete vehicle", err)
	}

	return nil
}

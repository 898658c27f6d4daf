package driverController

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

type DriverController struct {
	driverRepo repositories.DriverRepository
	log        logger.Logger
}

func New(driverRepo repositories.DriverRepository) *DriverController {
	return &DriverController{
		driverRepo: driverRepo,
		log:        logger.New("DriverController"),
	}
}

func (c *DriverController) Register(ctx context.Context, request *RegisterDriverRequest) (*Driver, error) {
	log := c.log.Function("Register")

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, apperrors.Internal("failed to register driver", err)
	}

	driverID, err := utils.NewID(utils.DriverIDLength)
	if err != nil {
		return nil, apperrors.Internal("failed to register driver", err)
	}

	driver := &Driver{
		DriverID:      driverID,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		LicenseNumber: request.LicenseNumber,
		Phone:         request.Phone,
		Email:         request.Email,
		IsActive:      true,
		PasswordHash:  passwordHash,
	}

	if err := c.driverRepo.Create(ctx, driver); err != nil {
		return nil, apperrors.Internal("failed to register driver", err)
	}

	log.Info("registered driver", "driverID", driver.DriverID)

	return driver, nil
}

func (c *DriverController) GetAll(ctx context.Context) ([]Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	drivers, err := c.driverRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to get drivers", err)
	}

	if drivers == nil {
		drivers = []Driver{}
	}

	return drivers, nil
}

func (c *DriverController) Get(ctx context.Context, id string) (*Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	driver, err := c.driverRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("No driver found with that ID")
		}
		return nil, apperrors.Internal("failed to get driver", err)
	}

	return driver, nil
}

func (c *DriverController) Update(ctx context.Context, id string, request *UpdateDriverRequest) (*Driver, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	err := c.driverRepo.Update(ctx, &Driver{
		DriverID:      id,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		LicenseNumber: request.LicenseNumber,
		Phone:         request.Phone,
		Email:         request.Email,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("No driver found with that ID")
		}
		return nil, apperrors.Internal("failed to update driver", err)
	}

	return c.Get(ctx, id)
}

func (c *DriverController) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := c.driverRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("No driver found with that ID")
		}
		return apperrors.Internal("failed to delete driver", err)
	}

	return nil
}

package repositories

import (
	"context"

	"fleetcheck/internal/database"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"
	"fleetcheck/internal/services"

	"gorm.io/gorm"
)

type DriverRepository interface {
	Create(ctx context.Context, driver *Driver) error
	GetByID(ctx context.Context, id string) (*Driver, error)
	GetActiveByID(ctx context.Context, id string) (*Driver, error)
	GetAll(ctx context.Context) ([]Driver, error)
	Update(ctx context.Context, driver *Driver) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type driverRepository struct {
	db  database.DB
	log logger.Logger
}

func NewDriver(db database.DB) DriverRepository {
	return &driverRepository{
		db:  db,
		log: logger.New("driverRepository"),
	}
}

func (r *driverRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *driverRepository) Create(ctx context.Context, driver *Driver) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(driver).Error; err != nil {
		return log.Err("failed to create driver", err, "driverID", driver.DriverID)
	}

	return nil
}

func (r *driverRepository) GetByID(ctx context.Context, id string) (*Driver, error) {
	var driver Driver
	if err := r.getDB(ctx).First(&driver, "driver_id = ?", id).Error; err != nil {
		return nil, err
	}

	return &driver, nil
}

func (r *driverRepository) GetActiveByID(ctx context.Context, id string) (*Driver, error) {
	var driver Driver
	err := r.getDB(ctx).First(&driver, "driver_id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, err
	}

	return &driver, nil
}

func (r *driverRepository) GetAll(ctx context.Context) ([]Driver, error) {
	log := r.log.Function("GetAll")

	var drivers []Driver
	if err := r.getDB(ctx).Order("last_name, first_name").Find(&drivers).Error; err != nil {
		return nil, log.Err("failed to get all drivers", err)
	}

	return drivers, nil
}

func (r *driverRepository) Update(ctx context.Context, driver *Driver) error {
	log := r.log.Function("Update")

	result := r.getDB(ctx).Model(&Driver{}).
		Where("driver_id = ?", driver.DriverID).
		Updates(map[string]any{
			"first_name":     driver.FirstName,
			"last_name":      driver.LastName,
			"license_number": driver.LicenseNumber,
			"phone":          driver.Phone,
			"email":          driver.Email,
		})
	if result.Error != nil {
		return log.Err("failed to update driver", result.Error, "driverID", driver.DriverID)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *driverRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	result := r.getDB(ctx).Delete(&Driver{}, "driver_id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete driver", result.Error, "driverID", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *driverRepository) Exists(ctx context.Context, id string) (bool, error) {
	log := r.log.Function("Exists")

	var count int64
	err := r.getDB(ctx).Model(&Driver{}).Where("driver_id = ?", id).Count(&count).Error
	if err != nil {
		return false, log.Err("failed to check driver existence", err, "driverID", id)
	}

	return count > 0, nil
}

package repositories

import (
	"context"

	"fleetcheck/internal/database"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"
	"fleetcheck/internal/services"

	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *Vehicle) error
	GetByID(ctx context.Context, id string) (*Vehicle, error)
	GetAll(ctx context.Context) ([]Vehicle, error)
	Update(ctx context.Context, vehicle *Vehicle) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type vehicleRepository struct {
	db  database.DB
	log logger.Logger
}

func NewVehicle(db database.DB) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: logger.New("vehicleRepository"),
	}
}

func (r *vehicleRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *Vehicle) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(vehicle).Error; err != nil {
		return log.Err("failed to create vehicle", err, "vehicleID", vehicle.VehicleID)
	}

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*Vehicle, error) {
	var vehicle Vehicle
	if err := r.getDB(ctx).First(&vehicle, "vehicle_id = ?", id).Error; err != nil {
		return nil, err
	}

	return &vehicle, nil
}

func (r *vehicleRepository) GetAll(ctx context.Context) ([]Vehicle, error) {
	log := r.log.Function("GetAll")

	var vehicles []Vehicle
	if err := r.getDB(ctx).Order("make, model").Find(&vehicles).Error; err != nil {
		return nil, log.Err("failed to get all vehicles", err)
	}

	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *Vehicle) error {
	log := r.log.Function("Update")

	result := r.getDB(ctx).Model(&Vehicle{}).
		Where("vehicle_id = ?", vehicle.VehicleID).
		Updates(map[string]any{
			"registration_number": vehicle.RegistrationNumber,
			"make":                vehicle.Make,
			"model":               vehicle.Model,
			"year":                vehicle.Year,
			"vin":                 vehicle.VIN,
		})
	if result.Error != nil {
		return log.Err("failed to update vehicle", result.Error, "vehicleID", vehicle.VehicleID)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	result := r.getDB(ctx).Delete(&Vehicle{}, "vehicle_id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete vehicle", result.Error, "vehicleID", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *vehicleRepository) Exists(ctx context.Context, id string) (bool, error) {
	log := r.log.Function("Exists")

	var count int64
	err := r.getDB(ctx).Model(&Vehicle{}).Where("vehicle_id = ?", id).Count(&count).Error
	if err != nil {
		return false, log.Err("failed to check vehicle existence", err, "vehicleID", id)
	}

	return count > 0, nil
}

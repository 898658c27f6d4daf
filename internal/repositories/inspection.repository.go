package repositories

import (
	"context"
	"errors"
	"time"

	"fleetcheck/internal/database"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"
	"fleetcheck/internal/services"

	"gorm.io/gorm"
)

type InspectionRepository interface {
	Create(ctx context.Context, inspection *Inspection) error
	CreateSections(ctx context.Context, sections []any) error
	ExistsForDay(ctx context.Context, driverID, vehicleID string, day time.Time) (bool, error)
	GetDetailHeader(ctx context.Context, id string) (*InspectionDetail, error)
	GetEngineCheck(ctx context.Context, id string) (*EngineCheck, error)
	GetACStatus(ctx context.Context, id string) (*ACStatus, error)
	GetBodyDamages(ctx context.Context, id string) ([]BodyDamage, error)
	GetTireCheck(ctx context.Context, id string) (*TireCheck, error)
	GetGroundCheck(ctx context.Context, id string) (*GroundCheck, error)
	GetLightCheck(ctx context.Context, id string) (*LightCheck, error)
	GetSeatbeltCheck(ctx context.Context, id string) (*SeatbeltCheck, error)
	GetToolsCheck(ctx context.Context, id string) (*ToolsCheck, error)
	GetVehicleHistory(ctx context.Context, vehicleID string, limit int) ([]InspectionSummary, error)
	GetToday(ctx context.Context) ([]TodayInspection, error)
	GetRecent(ctx context.Context, limit int) ([]TodayInspection, error)
}

type inspectionRepository struct {
	db  database.DB
	log logger.Logger
}

func NewInspection(db database.DB) InspectionRepository {
	return &inspectionRepository{
		db:  db,
		log: logger.New("inspectionRepository"),
	}
}

func (r *inspectionRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *Inspection) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(inspection).Error; err != nil {
		return log.Err("failed to create inspection", err, "inspectionID", inspection.InspectionID)
	}

	return nil
}

// CreateSections inserts the pending checklist rows. Callers build the list
// from the sections present in the input; an empty list is valid. Sibling
// tables have no dependencies on each other so insert order is immaterial.
func (r *inspectionRepository) CreateSections(ctx context.Context, sections []any) error {
	log := r.log.Function("CreateSections")

	db := r.getDB(ctx)
	for _, section := range sections {
		if err := db.Create(section).Error; err != nil {
			return log.Err("failed to create inspection section", err)
		}
	}

	return nil
}

// ExistsForDay reports whether the (driver, vehicle) pair already has an
// inspection whose timestamp falls on the given server-local calendar day.
func (r *inspectionRepository) ExistsForDay(ctx context.Context, driverID, vehicleID string, day time.Time) (bool, error) {
	log := r.log.Function("ExistsForDay")

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int64
	err := r.getDB(ctx).Model(&Inspection{}).
		Where("driver_id = ? AND vehicle_id = ?", driverID, vehicleID).
		Where("inspection_date >= ? AND inspection_date < ?", dayStart, dayEnd).
		Count(&count).Error
	if err != nil {
		return false, log.Err("failed to check same-day inspection", err,
			"driverID", driverID, "vehicleID", vehicleID)
	}

	return count > 0, nil
}

func (r *inspectionRepository) GetDetailHeader(ctx context.Context, id string) (*InspectionDetail, error) {
	log := r.log.Function("GetDetailHeader")

	var detail InspectionDetail
	result := r.getDB(ctx).Raw(`
		SELECT i.inspection_id, i.driver_id, i.vehicle_id, i.inspection_date,
		       d.first_name AS driver_name,
		       v.registration_number AS vehicle_plate
		FROM inspections i
		JOIN drivers d ON i.driver_id = d.driver_id
		JOIN vehicles v ON i.vehicle_id = v.vehicle_id
		WHERE i.inspection_id = ?`, id).Scan(&detail)
	if result.Error != nil {
		return nil, log.Err("failed to get inspection", result.Error, "inspectionID", id)
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &detail, nil
}

// firstSection fetches the zero-or-one checklist row for an inspection,
// collapsing "no row" to nil rather than an error.
func firstSection[T any](db *gorm.DB, inspectionID string) (*T, error) {
	var section T
	err := db.First(&section, "inspection_id = ?", inspectionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *inspectionRepository) GetEngineCheck(ctx context.Context, id string) (*EngineCheck, error) {
	return firstSection[EngineCheck](r.getDB(ctx), id)
}

func (r *inspectionRepository) GetACStatus(ctx context.Context, id string) (*ACStatus, error) {
	return firstSection[ACStatus](r.getDB(ctx), id)
}

func (r *inspectionRepository) GetBodyDamages(ctx context.Context, id string) ([]BodyDamage, error) {
	var damages []BodyDamage
	if err := r.getDB(ctx).Find(&damages, "inspection_id = ?", id).Error; err != nil {
		return nil, err
	}

	return damages, nil
}

func (r *inspectionRepository) GetTireCheck(ctx context.Context, id string) (*TireCheck, error) {
	return firstSection[TireCheck](r.getDB(ctx), id)
}

func (r *inspectionRepository) GetGroundCheck(ctx context.Context, id string) (*GroundCheck, error) {
	return firstSection[GroundCheck](r.getDB(ctx), id)
}

func (r *inspectionRepository) GetLightCheck(ctx context.Context, id string) (*LightCheck, error) {
	return firstSection[LightCheck](r.getDB(ctx), id)
}

func (r *inspectionRepository) GetSeatbeltCheck(ctx context.Context, id string) (*SeatbeltCheck, error) {
	return firstSection[SeatbeltCheck](r.getDB(ctx), id)
}

func (r *inspectionRepository) GetToolsCheck(ctx context.Context, id string) (*ToolsCheck, error) {
	return firstSection[ToolsCheck](r.getDB(ctx), id)
}

func (r *inspectionRepository) GetVehicleHistory(ctx context.Context, vehicleID string, limit int) ([]InspectionSummary, error) {
	log := r.log.Function("GetVehicleHistory")

	var inspections []InspectionSummary
	err := r.getDB(ctx).Raw(`
		SELECT i.inspection_id, i.inspection_date,
		       d.first_name AS driver_name,
		       EXISTS(SELECT 1 FROM body_damages b WHERE b.inspection_id = i.inspection_id) AS has_damages
		FROM inspections i
		JOIN drivers d ON i.driver_id = d.driver_id
		WHERE i.vehicle_id = ?
		ORDER BY i.inspection_date DESC
		LIMIT ?`, vehicleID, limit).Scan(&inspections).Error
	if err != nil {
		return nil, log.Err("failed to get vehicle history", err, "vehicleID", vehicleID)
	}

	return inspections, nil
}

func (r *inspectionRepository) GetToday(ctx context.Context) ([]TodayInspection, error) {
	log := r.log.Function("GetToday")

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var inspections []TodayInspection
	err := r.getDB(ctx).Raw(`
		SELECT i.inspection_id, i.inspection_date,
		       d.first_name, d.last_name, d.license_number,
		       v.make, v.model, v.registration_number
		FROM inspections i
		JOIN drivers d ON i.driver_id = d.driver_id
		JOIN vehicles v ON i.vehicle_id = v.vehicle_id
		WHERE i.inspection_date >= ? AND i.inspection_date < ?`,
		dayStart, dayStart.AddDate(0, 0, 1)).Scan(&inspections).Error
	if err != nil {
		return nil, log.Err("failed to get today's inspections", err)
	}

	return inspections, nil
}

func (r *inspectionRepository) GetRecent(ctx context.Context, limit int) ([]TodayInspection, error) {
	log := r.log.Function("GetRecent")

	var inspections []TodayInspection
	err := r.getDB(ctx).Raw(`
		SELECT i.inspection_id, i.inspection_date,
		       d.first_name, d.last_name, d.license_number,
		       v.make, v.model, v.registration_number
		FROM inspections i
		JOIN drivers d ON i.driver_id = d.driver_id
		JOIN vehicles v ON i.vehicle_id = v.vehicle_id
		ORDER BY i.inspection_date DESC
		LIMIT ?`, limit).Scan(&inspections).Error
	if err != nil {
		return nil, log.Err("failed to get recent inspections", err)
	}

	return inspections, nil
}

package repositories

import (
	"context"

	"fleetcheck/internal/database"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"
	"fleetcheck/internal/services"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

type adminRepository struct {
	db  database.DB
	log logger.Logger
}

func NewAdmin(db database.DB) AdminRepository {
	return &adminRepository{
		db:  db,
		log: logger.New("adminRepository"),
	}
}

func (r *adminRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *adminRepository) Create(ctx context.Context, admin *Admin) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(admin).Error; err != nil {
		return log.Err("failed to create admin", err, "adminID", admin.AdminID)
	}

	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*Admin, error) {
	var admin Admin
	if err := r.getDB(ctx).First(&admin, "admin_id = ?", id).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	if err := r.getDB(ctx).First(&admin, "email = ?", email).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

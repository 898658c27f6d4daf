package adminController

import (
	"context"
	"strings"
	"time"

	"fleetcheck/internal/apperrors"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"
	"fleetcheck/internal/repositories"
	"fleetcheck/internal/utils"
)

const storeTimeout = 5 * time.Second

type AdminController struct {
	adminRepo repositories.AdminRepository
	log       logger.Logger
}

func New(adminRepo repositories.AdminRepository) *AdminController {
	return &AdminController{
		adminRepo: adminRepo,
		log:       logger.New("AdminController"),
	}
}

func (c *AdminController) Create(ctx context.Context, request *CreateAdminRequest) (string, error) {
	log := c.log.Function("Create")

	if err := utils.ValidateStruct(request); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", apperrors.Internal("failed to create admin", err)
	}

	// Admin ids are derived from the email local-part.
	adminID := strings.SplitN(request.Email, "@", 2)[0]

	admin := &Admin{
		AdminID:      adminID,
		Firstname:    request.Firstname,
		Lastname:     request.Lastname,
		Email:        request.Email,
		PhoneNumber:  request.PhoneNumber,
		PasswordHash: passwordHash,
	}

	if err := c.adminRepo.Create(ctx, admin); err != nil {
		return "", apperrors.Internal("failed to create admin", err)
	}

	log.Info("created admin", "adminID", adminID)

	return adminID, nil
}

package authController

import (
	"context"
	"errors"
	"time"

	"fleetcheck/config"
	"fleetcheck/internal/apperrors"
	"fleetcheck/internal/auth"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"
	"fleetcheck/internal/repositories"
	"fleetcheck/internal/utils"

	"gorm.io/gorm"
)

const storeTimeout = 5 * time.Second

type AuthController struct {
	adminRepo   repositories.AdminRepository
	driverRepo  repositories.DriverRepository
	authService *auth.Service
	config      config.Config
	log         logger.Logger
}

func New(
	adminRepo repositories.AdminRepository,
	driverRepo repositories.DriverRepository,
	authService *auth.Service,
	config config.Config,
) *AuthController {
	return &AuthController{
		adminRepo:   adminRepo,
		driverRepo:  driverRepo,
		authService: authService,
		config:      config,
		log:         logger.New("AuthController"),
	}
}

// AdminLogin checks email and password and issues an admin token. Unknown
// email and wrong password collapse to the same response so identities
// cannot be enumerated.
func (c *AuthController) AdminLogin(ctx context.Context, request *AdminLoginRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	admin, err := c.adminRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.Auth("Invalid credentials")
		}
		return "", apperrors.Internal("login failed", err)
	}

	if !utils.VerifyPassword(request.Password, admin.PasswordHash) {
		return "", apperrors.Auth("Invalid credentials")
	}

	token, err := c.authService.GenerateToken(admin.AdminID, auth.RoleAdmin, c.config.AdminTokenLifetime)
	if err != nil {
		return "", apperrors.Internal("login failed", err)
	}

	return token, nil
}

// DriverLogin authenticates an active driver and issues a driver token
// along with the driver record (credential fields are never serialized).
func (c *AuthController) DriverLogin(ctx context.Context, request *DriverLoginRequest) (string, *Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	driver, err := c.driverRepo.GetActiveByID(ctx, request.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.Auth("Invalid id or password")
		}
		return "", nil, apperrors.Internal("login failed", err)
	}

	if !utils.VerifyPassword(request.Password, driver.PasswordHash) {
		return "", nil, apperrors.Auth("Invalid id or password")
	}

	token, err := c.authService.GenerateToken(driver.DriverID, auth.RoleDriver, c.config.DriverTokenLifetime)
	if err != nil {
		return "", nil, apperrors.Internal("login failed", err)
	}

	return token, driver, nil
}

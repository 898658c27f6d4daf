package authController

import (
	"context"
	"testing"
	"time"

	"fleetcheck/config"
	"fleetcheck/internal/apperrors"
	"fleetcheck/internal/auth"
	"fleetcheck/internal/database"
	. "fleetcheck/internal/models"
	"fleetcheck/internal/repositories"
	"fleetcheck/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T) (*AuthController, *auth.Service) {
	t.Helper()

	cfg := config.Config{
		DatabaseDbPath:      ":memory:",
		JWTSecret:           "test-secret",
		AdminTokenLifetime:  24 * time.Hour,
		DriverTokenLifetime: 720 * time.Hour,
	}

	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	adminRepo := repositories.NewAdmin(db)
	driverRepo := repositories.NewDriver(db)
	authService := auth.NewService(cfg)

	ctx := context.Background()

	adminHash, err := utils.HashPassword("sup3rsecret")
	require.NoError(t, err)
	require.NoError(t, adminRepo.Create(ctx, &Admin{
		AdminID:      "kwame.mensah",
		Firstname:    "Kwame",
		Lastname:     "Mensah",
		Email:        "kwame.mensah@fleet.example",
		PasswordHash: adminHash,
	}))

	driverHash, err := utils.HashPassword("dr1verpass")
	require.NoError(t, err)
	require.NoError(t, driverRepo.Create(ctx, &Driver{
		DriverID:      "drv-auth1",
		FirstName:     "Yaw",
		LastName:      "Owusu",
		LicenseNumber: "GH-1010",
		IsActive:      true,
		PasswordHash:  driverHash,
	}))
	require.NoError(t, driverRepo.Create(ctx, &Driver{
		DriverID:      "drv-gone",
		FirstName:     "Ama",
		LastName:      "Asante",
		LicenseNumber: "GH-2020",
		IsActive:      false,
		PasswordHash:  driverHash,
	}))

	return New(adminRepo, driverRepo, authService, cfg), authService
}

func TestAdminLogin(t *testing.T) {
	controller, authService := newController(t)

	token, err := controller.AdminLogin(context.Background(), &AdminLoginRequest{
		Email:    "kwame.mensah@fleet.example",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "kwame.mensah", claims.ID)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestAdminLogin_BadCredentials(t *testing.T) {
	controller, _ := newController(t)
	ctx := context.Background()

	_, wrongPassword := controller.AdminLogin(ctx, &AdminLoginRequest{
		Email:    "kwame.mensah@fleet.example",
		Password: "wrong",
	})
	_, unknownEmail := controller.AdminLogin(ctx, &AdminLoginRequest{
		Email:    "nobody@fleet.example",
		Password: "sup3rsecret",
	})

	// Wrong password and unknown email are indistinguishable to the caller.
	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.True(t, apperrors.IsKind(wrongPassword, apperrors.KindAuth))
	assert.True(t, apperrors.IsKind(unknownEmail, apperrors.KindAuth))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestDriverLogin(t *testing.T) {
	controller, authService := newController(t)

	token, driver, err := controller.DriverLogin(context.Background(), &DriverLoginRequest{
		ID:       "drv-auth1",
		Password: "dr1verpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "Yaw", driver.FirstName)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "drv-auth1", claims.ID)
	assert.Equal(t, auth.RoleDriver, claims.Role)
}

func TestDriverLogin_Rejections(t *testing.T) {
	controller, _ := newController(t)
	ctx := context.Background()

	_, _, err := controller.DriverLogin(ctx, &DriverLoginRequest{ID: "drv-auth1", Password: "wrong"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuth))

	_, _, err = controller.DriverLogin(ctx, &DriverLoginRequest{ID: "missing", Password: "dr1verpass"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuth))

	// Deactivated drivers cannot log in even with the right password.
	_, _, err = controller.DriverLogin(ctx, &DriverLoginRequest{ID: "drv-gone", Password: "dr1verpass"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuth))
}

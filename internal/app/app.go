package app

import (
	"fleetcheck/config"
	"fleetcheck/internal/auth"
	"fleetcheck/internal/database"
	"fleetcheck/internal/handlers/middleware"
	"fleetcheck/internal/logger"
	"fleetcheck/internal/repositories"
	"fleetcheck/internal/services"

	adminController "fleetcheck/internal/controllers/admin"
	authController "fleetcheck/internal/controllers/auth"
	driverController "fleetcheck/internal/controllers/driver"
	inspectionController "fleetcheck/internal/controllers/inspection"
	vehicleController "fleetcheck/internal/controllers/vehicle"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Services
	AuthService        *auth.Service
	TransactionService *services.TransactionService
	KeyLockService     *services.KeyLockService

	// Repositories
	DriverRepo     repositories.DriverRepository
	VehicleRepo    repositories.VehicleRepository
	AdminRepo      repositories.AdminRepository
	InspectionRepo repositories.InspectionRepository

	// Controllers
	DriverController     *driverController.DriverController
	VehicleController    *vehicleController.VehicleController
	AdminController      *adminController.AdminController
	AuthController       *authController.AuthController
	InspectionController *inspectionController.InspectionController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	return NewWithConfig(config)
}

func NewWithConfig(config config.Config) (*App, error) {
	log := logger.New("app").Function("NewWithConfig")

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	// Initialize services
	authService := auth.NewService(config)
	transactionService := services.NewTransactionService(db)
	keyLockService := services.NewKeyLockService()

	// Initialize repositories
	driverRepo := repositories.NewDriver(db)
	vehicleRepo := repositories.NewVehicle(db)
	adminRepo := repositories.NewAdmin(db)
	inspectionRepo := repositories.NewInspection(db)

	// Initialize controllers with repositories and services
	middleware := middleware.New(authService, driverRepo, adminRepo)
	driverController := driverController.New(driverRepo)
	vehicleController := vehicleController.New(vehicleRepo)
	adminController := adminController.New(adminRepo)
	authController := authController.New(adminRepo, driverRepo, authService, config)
	inspectionController := inspectionController.New(
		inspectionRepo,
		driverRepo,
		vehicleRepo,
		transactionService,
		keyLockService,
	)

	app := &App{
		Database:             db,
		Config:               config,
		Middleware:           middleware,
		AuthService:          authService,
		TransactionService:   transactionService,
		KeyLockService:       keyLockService,
		DriverRepo:           driverRepo,
		VehicleRepo:          vehicleRepo,
		AdminRepo:            adminRepo,
		InspectionRepo:       inspectionRepo,
		DriverController:     driverController,
		VehicleController:    vehicleController,
		AdminController:      adminController,
		AuthController:       authController,
		InspectionController: inspectionController,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.AuthService,
		a.TransactionService,
		a.KeyLockService,
		a.DriverRepo,
		a.VehicleRepo,
		a.AdminRepo,
		a.InspectionRepo,
		a.DriverController,
		a.VehicleController,
		a.AdminController,
		a.AuthController,
		a.InspectionController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}

package main

import (
	"context"
	"errors"
	"os"

	"fleetcheck/internal/app"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"
	"fleetcheck/internal/utils"

	"gorm.io/gorm"
)

// Seeds a development database with a known admin, a handful of drivers
// and vehicles. Safe to run repeatedly.
func main() {
	log := logger.New("seed")

	application, err := app.New()
	if err != nil {
		log.Er("failed to initialize application", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Er("failed to close application", err)
		}
	}()

	if !application.Config.IsDevelopment() {
		log.Warn("refusing to seed outside development", "environment", application.Config.Environment)
		os.Exit(1)
	}

	if err := seed(application, log); err != nil {
		log.Er("seeding failed", err)
		os.Exit(1)
	}

	log.Info("Seeding complete")
}

func seed(application *app.App, log logger.Logger) error {
	ctx := context.Background()
	db := application.Database.SQL

	adminHash, err := utils.HashPassword("password")
	if err != nil {
		return err
	}

	admins := []Admin{
		{
			AdminID:      "fleet.admin",
			Firstname:    "Fleet",
			Lastname:     "Admin",
			Email:        "fleet.admin@example.com",
			PasswordHash: adminHash,
		},
	}

	for _, admin := range admins {
		var existing Admin
		if err := db.First(&existing, "admin_id = ?", admin.AdminID).Error; err == nil {
			log.Info("Admin already exists", "adminID", admin.AdminID)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		log.Info("Seeding admin", "adminID", admin.AdminID)
		if err := application.AdminRepo.Create(ctx, &admin); err != nil {
			return err
		}
	}

	driverHash, err := utils.HashPassword("password")
	if err != nil {
		return err
	}

	drivers := []Driver{
		{
			DriverID:      "seedDrv1",
			FirstName:     "Kwesi",
			LastName:      "Appiah",
			LicenseNumber: "GH-0001",
			Phone:         "+233200000001",
			IsActive:      true,
			PasswordHash:  driverHash,
		},
		{
			DriverID:      "seedDrv2",
			FirstName:     "Efua",
			LastName:      "Darko",
			LicenseNumber: "GH-0002",
			Phone:         "+233200000002",
			IsActive:      true,
			PasswordHash:  driverHash,
		},
		{
			DriverID:      "seedDrv3",
			FirstName:     "Nana",
			LastName:      "Osei",
			LicenseNumber: "GH-0003",
			IsActive:      false,
			PasswordHash:  driverHash,
		},
	}

	for _, driver := range drivers {
		exists, err := application.DriverRepo.Exists(ctx, driver.DriverID)
		if err != nil {
			return err
		}
		if exists {
			log.Info("Driver already exists", "driverID", driver.DriverID)
			continue
		}
		log.Info("Seeding driver", "driverID", driver.DriverID)
		if err := application.DriverRepo.Create(ctx, &driver); err != nil {
			return err
		}
	}

	vehicles := []Vehicle{
		{
			VehicleID:          "seedV1",
			RegistrationNumber: "GR-1021-20",
			Make:               "Toyota",
			Model:              "Hilux",
			Year:               2020,
		},
		{
			VehicleID:          "seedV2",
			RegistrationNumber: "GW-2284-18",
			Make:               "Isuzu",
			Model:              "NPR",
			Year:               2018,
		},
	}

	for _, vehicle := range vehicles {
		exists, err := application.VehicleRepo.Exists(ctx, vehicle.VehicleID)
		if err != nil {
			return err
		}
		if exists {
			log.Info("Vehicle already exists", "vehicleID", vehicle.VehicleID)
			continue
		}
		log.Info("Seeding vehicle", "vehicleID", vehicle.VehicleID)
		if err := application.VehicleRepo.Create(ctx, &vehicle); err != nil {
			return err
		}
	}

	return nil
}

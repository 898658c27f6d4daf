package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fleetcheck/internal/database"
	. "fleetcheck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPair(t *testing.T, db database.DB) (driverID, vehicleID string) {
	t.Helper()
	ctx := context.Background()

	driverID, vehicleID = "drv-seed", "veh-seed"
	require.NoError(t, NewDriver(db).Create(ctx, &Driver{
		DriverID:      driverID,
		FirstName:     "Esi",
		LastName:      "Boateng",
		LicenseNumber: "GH-900",
		IsActive:      true,
	}))
	require.NoError(t, NewVehicle(db).Create(ctx, &Vehicle{
		VehicleID:          vehicleID,
		RegistrationNumber: "GR-2417-20",
		Make:               "Toyota",
		Model:              "Hilux",
		Year:               2020,
		VIN:                "JT1234567890",
	}))

	return driverID, vehicleID
}

func TestInspectionRepository_ExistsForDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewInspection(db)
	ctx := context.Background()
	driverID, vehicleID := seedPair(t, db)

	exists, err := repo.ExistsForDay(ctx, driverID, vehicleID, time.Now())
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &Inspection{
		InspectionID: "insp01",
		DriverID:     driverID,
		VehicleID:    vehicleID,
	}))

	exists, err = repo.ExistsForDay(ctx, driverID, vehicleID, time.Now())
	require.NoError(t, err)
	assert.True(t, exists)

	// Yesterday's window does not see today's inspection.
	exists, err = repo.ExistsForDay(ctx, driverID, vehicleID, time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.False(t, exists)

	// A different pair is unaffected.
	exists, err = repo.ExistsForDay(ctx, driverID, "other-vehicle", time.Now())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInspectionRepository_SectionsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewInspection(db)
	ctx := context.Background()
	driverID, vehicleID := seedPair(t, db)

	require.NoError(t, repo.Create(ctx, &Inspection{
		InspectionID: "insp02",
		DriverID:     driverID,
		VehicleID:    vehicleID,
	}))

	sections := []any{
		&EngineCheck{InspectionID: "insp02", EngineOilLevel: "full", EngineOilColor: "amber", BrakeOilLevel: "ok"},
		&BodyDamage{InspectionID: "insp02", DamageType: "dent", Location: "rear-left", IsRecent: true},
		&BodyDamage{InspectionID: "insp02", DamageType: "scratch", Location: "hood", IsRecent: false},
	}
	require.NoError(t, repo.CreateSections(ctx, sections))

	engine, err := repo.GetEngineCheck(ctx, "insp02")
	require.NoError(t, err)
	require.NotNil(t, engine)
	assert.Equal(t, "amber", engine.EngineOilColor)

	damages, err := repo.GetBodyDamages(ctx, "insp02")
	require.NoError(t, err)
	assert.Len(t, damages, 2)

	// Sections that were never written collapse to nil, not an error.
	tires, err := repo.GetTireCheck(ctx, "insp02")
	require.NoError(t, err)
	assert.Nil(t, tires)

	tools, err := repo.GetToolsCheck(ctx, "insp02")
	require.NoError(t, err)
	assert.Nil(t, tools)
}

func TestInspectionRepository_CreateSectionsEmpty(t *testing.T) {
	repo := NewInspection(newTestDB(t))

	assert.NoError(t, repo.CreateSections(context.Background(), nil))
}

func TestInspectionRepository_GetDetailHeader(t *testing.T) {
	db := newTestDB(t)
	repo := NewInspection(db)
	ctx := context.Background()
	driverID, vehicleID := seedPair(t, db)

	require.NoError(t, repo.Create(ctx, &Inspection{
		InspectionID: "insp03",
		DriverID:     driverID,
		VehicleID:    vehicleID,
	}))

	detail, err := repo.GetDetailHeader(ctx, "insp03")
	require.NoError(t, err)
	assert.Equal(t, "Esi", detail.DriverName)
	assert.Equal(t, "GR-2417-20", detail.VehiclePlate)

	_, err = repo.GetDetailHeader(ctx, "missing")
	assert.Error(t, err)
}

func TestInspectionRepository_VehicleHistoryLimitAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewInspection(db)
	ctx := context.Background()
	driverID, vehicleID := seedPair(t, db)

	base := time.Now().Add(-40 * 24 * time.Hour)
	for i := 0; i < 31; i++ {
		require.NoError(t, repo.Create(ctx, &Inspection{
			InspectionID:   fmt.Sprintf("hist%02d", i),
			DriverID:       driverID,
			VehicleID:      vehicleID,
			InspectionDate: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	// Mark the newest inspection as damaged.
	require.NoError(t, repo.CreateSections(ctx, []any{
		&BodyDamage{InspectionID: "hist30", DamageType: "dent", Location: "door"},
	}))

	history, err := repo.GetVehicleHistory(ctx, vehicleID, 30)
	require.NoError(t, err)
	require.Len(t, history, 30)

	// Newest first; the oldest of the 31 fell off the page.
	assert.Equal(t, "hist30", history[0].InspectionID)
	assert.Equal(t, "hist01", history[29].InspectionID)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].InspectionDate.After(history[i-1].InspectionDate))
	}

	assert.True(t, history[0].HasDamages)
	assert.False(t, history[1].HasDamages)
}

func TestInspectionRepository_GetToday(t *testing.T) {
	db := newTestDB(t)
	repo := NewInspection(db)
	ctx := context.Background()
	driverID, vehicleID := seedPair(t, db)

	require.NoError(t, repo.Create(ctx, &Inspection{
		InspectionID: "today1",
		DriverID:     driverID,
		VehicleID:    vehicleID,
	}))
	require.NoError(t, repo.Create(ctx, &Inspection{
		InspectionID:   "old1",
		DriverID:       driverID,
		VehicleID:      vehicleID,
		InspectionDate: time.Now().AddDate(0, 0, -2),
	}))

	today, err := repo.GetToday(ctx)
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, "today1", today[0].InspectionID)
	assert.Equal(t, "Toyota", today[0].Make)
	assert.Equal(t, "GR-2417-20", today[0].RegistrationNumber)
}

func TestInspectionRepository_GetRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewInspection(db)
	ctx := context.Background()
	driverID, vehicleID := seedPair(t, db)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &Inspection{
			InspectionID:   fmt.Sprintf("rec%d", i),
			DriverID:       driverID,
			VehicleID:      vehicleID,
			InspectionDate: time.Now().Add(time.Duration(-i) * time.Hour),
		}))
	}

	recent, err := repo.GetRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "rec0", recent[0].InspectionID)
	assert.Equal(t, "rec1", recent[1].InspectionID)
}

package services

import (
	"context"
	"errors"
	"testing"

	"fleetcheck/config"
	"fleetcheck/internal/database"
	"fleetcheck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) database.DB {
	t.Helper()

	db, err := database.New(config.Config{DatabaseDbPath: ":memory:"})
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}

func countVehicles(t *testing.T, db database.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.SQL.Model(&models.Vehicle{}).Count(&count).Error)
	return count
}

func TestTransactionService_Commit(t *testing.T) {
	db := newTestDB(t)
	service := NewTransactionService(db)

	err := service.Execute(context.Background(), func(ctx context.Context) error {
		tx, ok := GetTransaction(ctx)
		require.True(t, ok)

		return tx.Create(&models.Vehicle{
			VehicleID:          "veh-tx",
			RegistrationNumber: "GR-1",
			Make:               "Nissan",
			Model:              "Patrol",
			Year:               2021,
		}).Error
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), countVehicles(t, db))
}

func TestTransactionService_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	service := NewTransactionService(db)

	boom := errors.New("boom")
	err := service.Execute(context.Background(), func(ctx context.Context) error {
		tx, ok := GetTransaction(ctx)
		require.True(t, ok)

		require.NoError(t, tx.Create(&models.Vehicle{
			VehicleID:          "veh-rollback",
			RegistrationNumber: "GR-2",
			Make:               "Nissan",
			Model:              "Patrol",
			Year:               2021,
		}).Error)

		return boom
	})
	require.ErrorIs(t, err, boom)

	// Nothing from the failed attempt survives.
	assert.Equal(t, int64(0), countVehicles(t, db))
}

func TestTransactionService_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	service := NewTransactionService(db)

	assert.Panics(t, func() {
		_ = service.Execute(context.Background(), func(ctx context.Context) error {
			tx, _ := GetTransaction(ctx)
			_ = tx.Create(&models.Vehicle{
				VehicleID:          "veh-panic",
				RegistrationNumber: "GR-3",
				Make:               "Nissan",
				Model:              "Patrol",
				Year:               2021,
			}).Error
			panic("mid-transaction failure")
		})
	})

	assert.Equal(t, int64(0), countVehicles(t, db))
}

func TestGetTransaction_AbsentFromPlainContext(t *testing.T) {
	_, ok := GetTransaction(context.Background())
	assert.False(t, ok)
}

package utils

import (
	"strings"
	"testing"
	"time"

	"fleetcheck/internal/apperrors"
	. "fleetcheck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	// The hash is self-describing; no separate salt is stored.
	assert.True(t, strings.HasPrefix(hash, "$2a$12$"))

	assert.True(t, VerifyPassword("correct horse battery", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("correct horse battery", "not-a-hash"))
}

func TestHashPassword_UniquePerCall(t *testing.T) {
	first, err := HashPassword("same input")
	require.NoError(t, err)
	second, err := HashPassword("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		id, err := NewID(DriverIDLength)
		require.NoError(t, err)
		assert.Len(t, id, DriverIDLength)
		assert.False(t, seen[id])
		seen[id] = true
	}

	short, err := NewID(VehicleIDLength)
	require.NoError(t, err)
	assert.Len(t, short, 6)
}

func TestValidateStruct_VehicleYear(t *testing.T) {
	request := VehicleRequest{
		RegistrationNumber: "GR-100-20",
		Make:               "Toyota",
		Model:              "Hiace",
		Year:               2020,
	}
	assert.NoError(t, ValidateStruct(&request))

	request.Year = 1899
	err := ValidateStruct(&request)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Equal(t, "Invalid vehicle year", err.Error())

	request.Year = time.Now().Year() + 1
	assert.NoError(t, ValidateStruct(&request))

	request.Year = time.Now().Year() + 2
	assert.Error(t, ValidateStruct(&request))
}

func TestValidateStruct_RequiredAndEmail(t *testing.T) {
	request := RegisterDriverRequest{
		LastName:      "Mensah",
		LicenseNumber: "GH-123",
		Password:      "longenough",
	}
	err := ValidateStruct(&request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is required")

	request.FirstName = "Kofi"
	request.Email = "not-an-email"
	err = ValidateStruct(&request)
	require.Error(t, err)
	assert.Equal(t, "invalid email address", err.Error())

	request.Email = "kofi@fleet.example"
	request.Password = "short"
	err = ValidateStruct(&request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

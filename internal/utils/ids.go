package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	DriverIDLength             = 8
	VehicleIDLength            = 6
	DailyInspectionIDLength    = 6
	DetailedInspectionIDLength = 8
)

// NewID generates a short opaque identifier. Uniqueness is not checked up
// front; a collision surfaces as a primary-key violation on insert.
func NewID(length int) (string, error) {
	return gonanoid.New(length)
}

package models

type Vehicle struct {
	VehicleID          string `gorm:"type:varchar(21);primaryKey" json:"vehicle_id"`
	RegistrationNumber string `gorm:"type:varchar(20);not null"   json:"registration_number"`
	Make               string `gorm:"type:varchar(50);not null"   json:"make"`
	Model              string `gorm:"type:varchar(50);not null"   json:"model"`
	Year               int    `gorm:"not null"                    json:"year"`
	VIN                string `gorm:"column:vin;type:varchar(17)" json:"vin"`
}

// vehicle_year is a registered rule bounding Year to [1900, current_year+1].
type VehicleRequest struct {
	RegistrationNumber string `json:"registration_number" validate:"required"`
	Make               string `json:"make"                validate:"required"`
	Model              string `json:"model"               validate:"required"`
	Year               int    `json:"year"                validate:"required,vehicle_year"`
	VIN                string `json:"vin"`
}

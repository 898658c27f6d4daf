package models

type Driver struct {
	DriverID      string `gorm:"type:varchar(21);primaryKey"     json:"driver_id"`
	FirstName     string `gorm:"type:varchar(50);not null"       json:"first_name"`
	LastName      string `gorm:"type:varchar(50);not null"       json:"last_name"`
	LicenseNumber string `gorm:"type:varchar(50);not null"       json:"license_number"`
	Phone         string `gorm:"type:varchar(20)"                json:"phone"`
	Email         string `gorm:"type:varchar(100)"               json:"email"`
	IsActive      bool   `gorm:"not null;default:true"           json:"is_active"`
	PasswordHash  string `gorm:"type:varchar(100)"               json:"-"`
}

type RegisterDriverRequest struct {
	FirstName     string `json:"first_name"     validate:"required"`
	LastName      string `json:"last_name"      validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email"          validate:"omitempty,email"`
	Password      string `json:"password"       validate:"required,min=8"`
}

type UpdateDriverRequest struct {
	FirstName     string `json:"first_name"     validate:"required"`
	LastName      string `json:"last_name"      validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email"          validate:"omitempty,email"`
}

type DriverLoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

package models

type Admin struct {
	AdminID      string `gorm:"type:varchar(64);primaryKey" json:"admin_id"`
	Firstname    string `gorm:"type:varchar(50);not null"   json:"firstname"`
	Lastname     string `gorm:"type:varchar(50);not null"   json:"lastname"`
	Email        string `gorm:"type:varchar(100);not null"  json:"email"`
	PhoneNumber  string `gorm:"type:varchar(20)"            json:"phone_number"`
	PasswordHash string `gorm:"type:varchar(100);not null"  json:"-"`
}

type CreateAdminRequest struct {
	Firstname   string `json:"firstname"    validate:"required"`
	Lastname    string `json:"lastname"     validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"     validate:"required,min=8"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

package models

import "time"

// Inspection is the parent row of the inspection aggregate. Checklist
// sections live in their own tables keyed by InspectionID and are only
// written when submitted.
type Inspection struct {
	InspectionID   string    `gorm:"type:varchar(21);primaryKey"       json:"inspection_id"`
	DriverID       string    `gorm:"type:varchar(21);not null;index"   json:"driver_id"`
	VehicleID      string    `gorm:"type:varchar(21);not null;index"   json:"vehicle_id"`
	InspectionDate time.Time `gorm:"autoCreateTime"                    json:"inspection_date"`
}

type EngineCheck struct {
	InspectionID   string `gorm:"type:varchar(21);primaryKey" json:"inspection_id"`
	EngineOilLevel string `gorm:"type:varchar(20)"            json:"engine_oil_level"`
	EngineOilColor string `gorm:"type:varchar(20)"            json:"engine_oil_color"`
	BrakeOilLevel  string `gorm:"type:varchar(20)"            json:"brake_oil_level"`
}

type ACStatus struct {
	InspectionID string `gorm:"type:varchar(21);primaryKey" json:"inspection_id"`
	Status       string `gorm:"type:varchar(20)"            json:"status"`
}

func (ACStatus) TableName() string { return "ac_status" }

// BodyDamage is the only one-to-many child: zero or more entries per
// inspection.
type BodyDamage struct {
	ID           int    `gorm:"primaryKey;autoIncrement"      json:"id"`
	InspectionID string `gorm:"type:varchar(21);index;not null" json:"inspection_id"`
	DamageType   string `gorm:"type:varchar(50)"              json:"damage_type"`
	Location     string `gorm:"type:varchar(50)"              json:"location"`
	IsRecent     bool   `json:"is_recent"`
}

type TireCheck struct {
	InspectionID        string `gorm:"type:varchar(21);primaryKey" json:"inspection_id"`
	FrontLeftCondition  string `gorm:"type:varchar(20)"            json:"front_left_condition"`
	FrontRightCondition string `gorm:"type:varchar(20)"            json:"front_right_condition"`
	BackLeftCondition   string `gorm:"type:varchar(20)"            json:"back_left_condition"`
	BackRightCondition  string `gorm:"type:varchar(20)"            json:"back_right_condition"`
}

type GroundCheck struct {
	InspectionID string `gorm:"type:varchar(21);primaryKey" json:"inspection_id"`
	OilOnFloor   bool   `json:"oil_on_floor"`
	OilOnTires   bool   `json:"oil_on_tires"`
}

type LightCheck struct {
	InspectionID string `gorm:"type:varchar(21);primaryKey" json:"inspection_id"`
	FullLight    bool   `json:"full_light"`
	DimLight     bool   `json:"dim_light"`
	BrakeLight   bool   `json:"brake_light"`
}

type SeatbeltCheck struct {
	InspectionID string `gorm:"type:varchar(21);primaryKey" json:"inspection_id"`
	FrontLeft    bool   `json:"front_left"`
	FrontRight   bool   `json:"front_right"`
	BackLeft     bool   `json:"back_left"`
	BackRight    bool   `json:"back_right"`
	BackMiddle   bool   `json:"back_middle"`
}

type ToolsCheck struct {
	InspectionID     string `gorm:"type:varchar(21);primaryKey" json:"inspection_id"`
	SpareTire        bool   `json:"spare_tire"`
	JackWheelSpanner bool   `json:"jack_wheel_spanner"`
	CautionTriangle  bool   `json:"caution_triangle"`
	FireExtinguisher bool   `json:"fire_extinguisher"`
}

func (ToolsCheck) TableName() string { return "tools_check" }

// Checklist section inputs. Nil pointers mean the section was not
// submitted and no row is written for it.

type EngineCheckInput struct {
	EngineOilLevel string `json:"engine_oil_level"`
	EngineOilColor string `json:"engine_oil_color"`
	BrakeOilLevel  string `json:"brake_oil_level"`
}

type ACStatusInput struct {
	Status string `json:"status"`
}

type BodyDamageInput struct {
	DamageType string `json:"damage_type"`
	Location   string `json:"location"`
	IsRecent   bool   `json:"is_recent"`
}

type TireCheckInput struct {
	FrontLeftCondition  string `json:"front_left_condition"`
	FrontRightCondition string `json:"front_right_condition"`
	BackLeftCondition   string `json:"back_left_condition"`
	BackRightCondition  string `json:"back_right_condition"`
}

type GroundCheckInput struct {
	OilOnFloor bool `json:"oil_on_floor"`
	OilOnTires bool `json:"oil_on_tires"`
}

type LightCheckInput struct {
	FullLight  bool `json:"full_light"`
	DimLight   bool `json:"dim_light"`
	BrakeLight bool `json:"brake_light"`
}

type SeatbeltCheckInput struct {
	FrontLeft  bool `json:"front_left"`
	FrontRight bool `json:"front_right"`
	BackLeft   bool `json:"back_left"`
	BackRight  bool `json:"back_right"`
	BackMiddle bool `json:"back_middle"`
}

type ToolsCheckInput struct {
	SpareTire        bool `json:"spare_tire"`
	JackWheelSpanner bool `json:"jack_wheel_spanner"`
	CautionTriangle  bool `json:"caution_triangle"`
	FireExtinguisher bool `json:"fire_extinguisher"`
}

type CreateDailyInspectionRequest struct {
	DriverID  string `json:"driver_id"`
	VehicleID string `json:"vehicle_id"`
}

type CreateDetailedInspectionRequest struct {
	DriverID       string              `json:"driver_id"`
	VehicleID      string              `json:"vehicle_id"`
	EngineChecks   *EngineCheckInput   `json:"engine_checks"`
	ACStatus       *ACStatusInput      `json:"ac_status"`
	BodyDamages    []BodyDamageInput   `json:"body_damages"`
	TireChecks     *TireCheckInput     `json:"tire_checks"`
	GroundChecks   *GroundCheckInput   `json:"ground_checks"`
	LightChecks    *LightCheckInput    `json:"light_checks"`
	SeatbeltChecks *SeatbeltCheckInput `json:"seatbelt_checks"`
	ToolsChecks    *ToolsCheckInput    `json:"tools_checks"`
}

// InspectionDetail is the aggregate read shape: the parent row annotated
// with driver/vehicle labels plus every checklist section. Absent
// zero-or-one sections serialize as null, body damages as a list.
type InspectionDetail struct {
	InspectionID   string         `json:"inspection_id"`
	DriverID       string         `json:"driver_id"`
	VehicleID      string         `json:"vehicle_id"`
	InspectionDate time.Time      `json:"inspection_date"`
	DriverName     string         `json:"driver_name"`
	VehiclePlate   string         `json:"vehicle_plate"`
	EngineChecks   *EngineCheck   `json:"engine_checks"`
	ACStatus       *ACStatus      `json:"ac_status"`
	BodyDamages    []BodyDamage   `json:"body_damages"`
	TireChecks     *TireCheck     `json:"tire_checks"`
	GroundChecks   *GroundCheck   `json:"ground_checks"`
	LightChecks    *LightCheck    `json:"light_checks"`
	SeatbeltChecks *SeatbeltCheck `json:"seatbelt_checks"`
	ToolsCheck     *ToolsCheck    `json:"tools_check"`
}

// InspectionSummary is one row of a vehicle's inspection history.
type InspectionSummary struct {
	InspectionID   string    `json:"inspection_id"`
	InspectionDate time.Time `json:"inspection_date"`
	DriverName     string    `json:"driver_name"`
	HasDamages     bool      `json:"has_damages"`
}

type VehicleSummary struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// TodayInspection is one row of the daily roll-up listing.
type TodayInspection struct {
	InspectionID       string    `json:"inspection_id"`
	InspectionDate     time.Time `json:"inspection_date"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	LicenseNumber      string    `json:"license_number"`
	Make               string    `json:"make"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registration_number"`
}

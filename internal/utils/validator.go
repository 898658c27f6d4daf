package utils

import (
	"fmt"
	"time"

	"fleetcheck/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Model years run from 1900 through next year's models.
	_ = v.RegisterValidation("vehicle_year", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= 1900 && year <= int64(time.Now().Year()+1)
	})

	return v
}

// ValidateStruct checks payload tags and converts the first failure into a
// validation error for the centralized responder.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrors) == 0 {
		return apperrors.Validation("invalid request body")
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return apperrors.Validation(fmt.Sprintf("%s is required", fe.Field()))
	case "vehicle_year":
		return apperrors.Validation("Invalid vehicle year")
	case "email":
		return apperrors.Validation("invalid email address")
	case "min":
		return apperrors.Validation(fmt.Sprintf("%s is too short", fe.Field()))
	default:
		return apperrors.Validation(fmt.Sprintf("invalid value for %s", fe.Field()))
	}
}

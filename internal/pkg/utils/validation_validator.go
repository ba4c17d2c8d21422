package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("staff_role", validateStaffRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateStaffRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "doctor" || value == "nurse" || value == "admin"
}

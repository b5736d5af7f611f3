package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// InitValidator builds the shared validator. Calling it more than once is safe.
func InitValidator() {
	if Validate != nil {
		return
	}
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// "notblank" rejects strings that are empty after trimming.
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func init() {
	InitValidator()
}

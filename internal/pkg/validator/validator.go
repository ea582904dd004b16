// Package validator checks DTOs whose rules go beyond gin's binding
// tags. Failures come back as a field-to-problem map keyed by the JSON
// field name, shaped for the error envelope's details slot.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// report fields under their wire names, not the Go struct names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// Validate runs the struct's validate tags. It returns nil when the
// value is clean.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	problems := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		problems[fe.Field()] = describe(fe)
	}
	return problems
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}

package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report fields by their wire name (json for bodies, form for queries).
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}

// Validate runs the go-playground/validator tags declared on the DTOs.
// The returned error is a validator.ValidationErrors when a rule fails.
func Validate(v any) error {
	return validate.Struct(v)
}

// FieldErrors flattens a validation error into field → failed tag.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fields
	}
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

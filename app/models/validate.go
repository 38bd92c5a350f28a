package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so callers can echo them back.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// Validate checks that the required post fields are present.
func (in PostInput) Validate() error {
	return validate.Struct(in)
}

// Validate checks that the required comment fields are present.
func (in CommentInput) Validate() error {
	return validate.Struct(in)
}

// InvalidFields lists the fields that failed validation, in declaration order.
// It returns nil when err is not a validation failure.
func InvalidFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

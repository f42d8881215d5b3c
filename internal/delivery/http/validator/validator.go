// Package validator adapts go-playground/validator for echo request binding.
package validator

import (
	"net/http"
	"reflect"
	"strings"

	domainerrors "zilptext/internal/domain/errors"
	"zilptext/internal/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator implements echo.Validator on top of go-playground/validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds the validator with json tag names so error fields match the
// request payload keys.
func New() *EchoValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &EchoValidator{validate: validate}
}

// Validate checks struct tags and translates failures into the field error
// shape, keyed by json field name with validation.<rule> messages.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	fields := make(map[string][]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		fields[field] = append(fields[field], "validation."+fe.Tag())
	}

	return domainerrors.NewValidationError(http.StatusBadRequest, fields)
}

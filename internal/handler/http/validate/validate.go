// Package validate wraps go-playground/validator to produce exhaustive,
// structured field violations. All failing fields are reported together;
// validation never stops at the first failure.
package validate

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"profeed/internal/domain/entity"
)

// Validator validates request body structs against their tags.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with JSON field naming and the custom
// two-decimal-places rule registered.
func New() *Validator {
	v := validator.New()

	// Report violations under the wire field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("twodecimals", func(fl validator.FieldLevel) bool {
		scaled := fl.Field().Float() * 100
		return math.Abs(scaled-math.Round(scaled)) < 1e-9
	})

	return &Validator{v: v}
}

// Struct validates s and returns every violation found. A nil slice means
// the struct is valid.
func (val *Validator) Struct(s any) []entity.ValidationError {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return []entity.ValidationError{{Field: "body", Message: "invalid request body"}}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []entity.ValidationError{{Field: "body", Message: err.Error()}}
	}

	out := make([]entity.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, entity.ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

// message renders a stable human-readable message for a single violation.
// Length violations echo the offending length.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return fmt.Sprintf("is required when %s is absent", paramField(fe.Param()))
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters (got %d)",
				fe.Param(), len(fe.Value().(string)))
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "unique":
		return "must not contain duplicate entries"
	case "twodecimals":
		return "must have at most 2 decimal places"
	default:
		return fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
}

// paramField lowercases the first rune of a referenced struct field so the
// message names the wire field (PhoneNumber -> phoneNumber).
func paramField(param string) string {
	if param == "" {
		return param
	}
	return strings.ToLower(param[:1]) + param[1:]
}

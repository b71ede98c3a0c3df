// Package validation wraps go-playground/validator and turns rule failures
// into structured field errors suitable for a 400 response body.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()

		// Report the json tag name instead of the Go field name.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// decimal.Decimal validates as its float value so numeric rules
		// (required, gt) apply to it.
		validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})

		// uuid.UUID validates as its string form, with uuid.Nil mapping to
		// the empty string so `required` catches zero identifiers.
		validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if id, ok := field.Interface().(uuid.UUID); ok {
				if id == uuid.Nil {
					return ""
				}
				return id.String()
			}
			return nil
		}, uuid.UUID{})
	})
	return validate
}

// Check validates a request struct and returns one entry per failed rule.
// A nil result means the struct passed.
func Check(s interface{}) []FieldError {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Rule: "struct", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, ve := range verrs {
		out = append(out, FieldError{
			Field:   ve.Field(),
			Rule:    ve.Tag(),
			Message: message(ve),
		})
	}
	return out
}

func message(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", ve.Field())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", ve.Field(), ve.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", ve.Field(), ve.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", ve.Field(), ve.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", ve.Field())
	default:
		return fmt.Sprintf("%s failed on rule %s", ve.Field(), ve.Tag())
	}
}

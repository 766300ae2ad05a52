package main

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// maxWholeFloat is 2^63, the first float64 beyond the int64 range.
const maxWholeFloat = float64(1 << 63)

type requestValidator struct {
	validate *validator.Validate
}

var _ echo.Validator = (*requestValidator)(nil)

func newRequestValidator() *requestValidator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	// decimals are validated as plain floats
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	// whole numbers must also fit in an int64 quantity
	validate.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Float32, reflect.Float64:
			f := fl.Field().Float()
			return f == math.Trunc(f) && f > -maxWholeFloat && f < maxWholeFloat
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return true
		default:
			return false
		}
	})

	return &requestValidator{validate: validate}
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return describeValidation(err)
	}
	return nil
}

// Var validates a single value against tag, reporting failures as
// ErrInvalidInput under name.
func (v *requestValidator) Var(name string, value any, tag string) error {
	if err := v.validate.Var(value, tag); err != nil {
		return invalidInput("%s failed %s", name, tag)
	}
	return nil
}

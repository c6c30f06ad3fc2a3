package handlers

import (
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const cpfLength = 11

// RegisterValidators installs the custom binding rules used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	// decimal.Decimal is validated as its float value, so numeric tags like gte work on it.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	if err := v.RegisterValidation("cpf", validateCPF); err != nil {
		return fmt.Errorf("failed to register cpf validator: %w", err)
	}
	return nil
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// validateCPF accepts exactly eleven ASCII digits. Check digits are not verified.
func validateCPF(fl validator.FieldLevel) bool {
	cpf := fl.Field().String()
	if len(cpf) != cpfLength {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Describe превращает ошибки валидатора в карту "поле -> причина" для ответа клиенту.
func Describe(errs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fe.Field()] = message(fe)
	}
	return details
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		if isNumber(fe) {
			return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if isNumber(fe) {
			return fmt.Sprintf("must be less than or equal to %s", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "custom_email", "email":
		return "must be a valid email address"
	case "gender":
		return "must be one of: male, female"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func isNumber(fe validator.FieldError) bool {
	switch fe.Value().(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Message renders a single validator tag failure as a caller-facing
// sentence.
func Message(field, tag string) string {
	field = strings.ToLower(field)

	switch tag {
	case "required":
		return fmt.Sprintf("%s must not be empty", field)
	case "min":
		return fmt.Sprintf("%s is below the minimum length or value", field)
	case "max":
		return fmt.Sprintf("%s exceeds the maximum length or value", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to the minimum", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than the minimum", field)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to the maximum", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of the allowed values", field)
	case "base64":
		return fmt.Sprintf("%s must be valid base64", field)
	case "numeric":
		return fmt.Sprintf("%s must be numeric", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// BindingErrorMessage flattens a Gin binding error into one message,
// preferring the first validator field failure when present.
func BindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return Message(verrs[0].Field(), verrs[0].Tag())
	}
	return err.Error()
}

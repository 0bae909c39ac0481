package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatBindingError turns gin binding failures into field-level messages
// safe to return to the client. Non-validation errors (malformed JSON and the
// like) collapse into a single generic message.
func FormatBindingError(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"body": "invalid request body"}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[strings.ToLower(fieldErr.Field())] = messageForTag(fieldErr)
	}

	return fields
}

func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

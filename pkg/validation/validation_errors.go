package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages converts a validator error into user-facing messages using label
// for the field name. Non-validator errors are returned as-is.
func Messages(err error, label string) []string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, Message(e, label))
	}
	return messages
}

// Message formats a single validation error to a user-friendly message
func Message(e validator.FieldError, label string) string {
	if label == "" {
		label = formatCamelCase(e.Field())
	}
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min", "utf16_min":
		return fmt.Sprintf("%s must be at least %s characters long", label, param)

	case "max", "utf16_max":
		return fmt.Sprintf("%s should not exceed %s characters", label, param)

	case "oneof":
		return fmt.Sprintf("Please select a valid %s", strings.ToLower(label))

	case "in_mobile":
		return "Please enter a valid Indian phone number"

	case "simple_email", "email":
		return "Please enter a valid email address"

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// formatCamelCase converts camelCase field names to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
			r += 'a' - 'A'
		}
		result.WriteRune(r)
	}
	return result.String()
}

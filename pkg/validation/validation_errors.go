package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps wire field names to user-facing labels.
var FieldLabels = map[string]string{
	"name":          "Name",
	"email":         "Email",
	"message":       "Message",
	"firstName":     "First name",
	"lastName":      "Last name",
	"phone":         "Phone number",
	"position":      "Position",
	"applicantType": "Applicant type",
	"experience":    "Experience",
	"coverLetter":   "Cover letter",
	"cvFile":        "CV file",
}

// FieldErrors converts validator errors into a field-to-message map (the
// validation error set rendered next to form fields). Every violation
// is reported; one bad field never hides another. A non-validator error
// maps to a single catch-all entry.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	if err == nil {
		return fields
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_"] = err.Error()
		return fields
	}

	for _, e := range validationErrors {
		// First tag wins per field; rules within a field are ordered
		// required-before-shape so "missing" beats "too short".
		if _, seen := fields[e.Field()]; !seen {
			fields[e.Field()] = formatSingleError(e)
		}
	}
	return fields
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())

	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())

	case "email_shape":
		return "Invalid email format"

	case "oneof":
		options := strings.Join(strings.Split(e.Param(), " "), ", ")
		return fmt.Sprintf("%s must be one of: %s", label, options)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid", label)
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts camelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i == 0 {
			result.WriteRune(unicode.ToUpper(r))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
			result.WriteRune(unicode.ToLower(r))
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

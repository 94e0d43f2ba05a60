package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Message string   `json:"message" example:"Course not found"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse is a bare acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"Enrolled successfully"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status" example:"OK"`
}

// NewErrorResponse creates an error body with the given message
func NewErrorResponse(message string, details ...string) ErrorResponse {
	return ErrorResponse{Message: message, Details: details}
}

// HandleValidationError converts binding errors into one readable line per field.
// Errors that are not validator errors (malformed JSON, wrong types) yield a single line.
func HandleValidationError(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request format"}
	}

	details := make([]string, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, formatFieldError(e))
	}
	return details
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

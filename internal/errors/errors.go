package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when a catalog record cannot be resolved by id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCredentials is returned for unknown email and wrong password
	// alike, so callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when an admin with the email already exists.
	ErrEmailTaken = errors.New("an admin with this email already exists")
	// ErrRegistrationClosed is returned when registration is disabled and an
	// admin already exists.
	ErrRegistrationClosed = errors.New("admin registration is closed")
	// ErrUnauthorized is returned for a missing, malformed or expired token.
	ErrUnauthorized = errors.New("invalid or expired token")
)

// ValidationError reports the first field that failed its constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors at the gateway boundary.
func MapErrorToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return NewHTTPError(http.StatusBadRequest, ve.Error(), "VALIDATION_ERROR")
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrRegistrationClosed):
		return NewHTTPError(http.StatusForbidden, err.Error(), "REGISTRATION_CLOSED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

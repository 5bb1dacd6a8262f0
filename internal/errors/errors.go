package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrBlessingNotFound is returned when no blessing exists for a code.
	ErrBlessingNotFound = errors.New("blessing not found")
	// ErrInvalidAmount is returned when a kaineetam amount is below one rupee.
	ErrInvalidAmount = errors.New("amount must be at least 1")
	// ErrUnknownTone is returned when a tone outside the supported set is requested.
	ErrUnknownTone = errors.New("unknown blessing tone")
	// ErrNothingToEncode is returned when the UPI builder or QR renderer is
	// given nothing to work with. Insufficient input, not a system fault.
	ErrNothingToEncode = errors.New("nothing to encode")
)

// ValidationError reports which required fields were missing or invalid.
// Always recoverable: the caller re-submits with the fields filled in.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError creates a ValidationError for the given field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Code   string   `json:"code"`
	Fields []string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     []string
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
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		httpErr := NewHTTPError(http.StatusBadRequest, vErr.Error(), "VALIDATION_ERROR")
		httpErr.Fields = vErr.Fields
		return httpErr
	}

	switch err {
	case ErrBlessingNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "BLESSING_NOT_FOUND")
	case ErrInvalidAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case ErrUnknownTone:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNKNOWN_TONE")
	case ErrNothingToEncode:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOTHING_TO_ENCODE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

package dto

import (
	"net/http"

	"github.com/coreflow/backend/internal/domain/shared"
)

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Pricing business-rule codes pass through unchanged; clients match on
// them, so they keep their domain spelling.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:     http.StatusInternalServerError,
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,
	ErrCodeNotFound:    http.StatusNotFound,
	ErrCodeRateLimited: http.StatusTooManyRequests,

	// Malformed input -> 400 Bad Request
	shared.CodeMalformedRequest: http.StatusBadRequest,
	shared.CodeInvalidInput:     http.StatusBadRequest,

	// Business rule violations -> 422 Unprocessable Entity
	shared.CodeUnknownBundle:   http.StatusUnprocessableEntity,
	shared.CodeMinimumSeats:    http.StatusUnprocessableEntity,
	shared.CodeUnmetDependency: http.StatusUnprocessableEntity,

	shared.CodeNotFound: http.StatusNotFound,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

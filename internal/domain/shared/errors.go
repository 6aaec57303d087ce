package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes used across the pricing domain. Handlers map these to HTTP
// status classes; the codes themselves are part of the API contract.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeMalformedRequest = "MALFORMED_REQUEST"
	CodeUnknownBundle    = "UNKNOWN_BUNDLE"
	CodeMinimumSeats     = "MINIMUM_SEATS"
	CodeUnmetDependency  = "UNMET_DEPENDENCY"
)

// Common domain errors
var (
	ErrNotFound     = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidInput = NewDomainError(CodeInvalidInput, "Invalid input provided")
)

package model

// Standard error codes surfaced in logs and error pages.
const (
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidForm     = "INVALID_FORM"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError is an expected business failure that handlers map to a status code.
type DomainError struct {
	Code    string
	Message string
}

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

// ErrProductNotFound is returned when no row matches the requested id, either
// on read or because a write affected zero rows.
var ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")

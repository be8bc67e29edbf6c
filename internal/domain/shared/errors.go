package shared

import "errors"

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

// IsDomainError reports whether err is (or wraps) a DomainError and returns it
func IsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrEmptyCart           = NewDomainError("EMPTY_CART", "Cart has no line items")
	ErrInsufficientPayment = NewDomainError("INSUFFICIENT_PAYMENT", "Tendered amount is less than the total")
	ErrExceedsReturnable   = NewDomainError("EXCEEDS_RETURNABLE", "Quantity exceeds the remaining returnable quantity")
	ErrNoSaleContext       = NewDomainError("NO_SALE_CONTEXT", "No original sale selected for the return")
	ErrCommitFailed        = NewDomainError("COMMIT_FAILED", "Commit failed and was rolled back")
)

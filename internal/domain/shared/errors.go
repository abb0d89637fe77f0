package shared

// DomainError represents a recoverable, caller-facing domain error
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

// Common domain errors. These are the only error kinds the billing engine
// surfaces to its callers; anything else is treated as infrastructure failure.
var (
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrDuplicateBill       = NewDomainError("DUPLICATE_BILL", "A bill already exists for this reading")
	ErrInsufficientPayment = NewDomainError("INSUFFICIENT_PAYMENT", "Payment amount is less than the bill amount")
	ErrAlreadyPaid         = NewDomainError("ALREADY_PAID", "Bill has already been paid")
	// Ownership-scoped lookups report ErrNotFound for foreign rows so a
	// caller cannot probe for another customer's resources; ErrForbidden
	// is reserved for surfaces where the resource is known to the caller.
	ErrForbidden = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
)

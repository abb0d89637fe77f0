package dto

import "net/http"

// Error code constants, format: ERR_<CATEGORY>_<DESCRIPTION>
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeValidation is used when request validation fails
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeForbidden is used when the caller lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeDuplicateBill is used when a reading has already been billed
	ErrCodeDuplicateBill = "ERR_DUPLICATE_BILL"
	// ErrCodeInsufficientPayment is used when a payment does not cover the bill
	ErrCodeInsufficientPayment = "ERR_INSUFFICIENT_PAYMENT"
	// ErrCodeAlreadyPaid is used when a bill has already been settled
	ErrCodeAlreadyPaid = "ERR_ALREADY_PAID"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:            http.StatusInternalServerError,
	ErrCodeBadRequest:          http.StatusBadRequest,
	ErrCodeValidation:          http.StatusBadRequest,
	ErrCodeInvalidInput:        http.StatusBadRequest,
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeForbidden:           http.StatusForbidden,
	ErrCodeDuplicateBill:       http.StatusConflict,
	ErrCodeAlreadyPaid:         http.StatusConflict,
	ErrCodeInsufficientPayment: http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code,
// defaulting to 500 for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainCodeMapping maps domain error codes to API error codes
var domainCodeMapping = map[string]string{
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_METER":        ErrCodeInvalidInput,
	"INVALID_CUSTOMER":     ErrCodeInvalidInput,
	"INVALID_MONTH":        ErrCodeInvalidInput,
	"INVALID_BILL":         ErrCodeInvalidInput,
	"INVALID_AMOUNT":       ErrCodeInvalidInput,
	"INVALID_NOTIFICATION": ErrCodeInvalidInput,
	"INVALID_TARIFF":       ErrCodeInvalidInput,
	"NOT_FOUND":            ErrCodeNotFound,
	"FORBIDDEN":            ErrCodeForbidden,
	"DUPLICATE_BILL":       ErrCodeDuplicateBill,
	"INSUFFICIENT_PAYMENT": ErrCodeInsufficientPayment,
	"ALREADY_PAID":         ErrCodeAlreadyPaid,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Unknown codes are returned as-is and resolve to 500.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := domainCodeMapping[code]; ok {
		return apiCode
	}
	return code
}

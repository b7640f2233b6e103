package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Query error codes (QUERY_*)
const (
	QueryInvalidFilter      ErrorCode = "QUERY_001"
	QueryInvalidDateRange   ErrorCode = "QUERY_002"
	QueryInvalidAmountRange ErrorCode = "QUERY_003"
	QueryEmptyQuestion      ErrorCode = "QUERY_004"
)

// Store error codes (STORE_*)
const (
	StoreUnavailable        ErrorCode = "STORE_001"
	StoreTransactionMissing ErrorCode = "STORE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_002"
	SystemUnexpectedError   ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Query errors
	QueryInvalidFilter:      "Invalid query filter",
	QueryInvalidDateRange:   "Date range start must not be after end",
	QueryInvalidAmountRange: "Amount range minimum must not exceed maximum",
	QueryEmptyQuestion:      "Question text is required",

	// Store errors
	StoreUnavailable:        "Transaction store is temporarily unavailable",
	StoreTransactionMissing: "Transaction not found",

	// System errors
	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
	SystemUnexpectedError:   "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

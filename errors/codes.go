package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration and input errors
const (
	// ErrCodeMissingField indicates a required setting or argument is empty.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a setting has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Remote errors, mapped from HTTP responses
const (
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrCodeConflict        ErrorCode = "CONFLICT"
	ErrCodeUnprocessable   ErrorCode = "UNPROCESSABLE"
	ErrCodeRateLimited     ErrorCode = "RATE_LIMITED"
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

// Connection errors
const (
	// ErrCodeConnectionFailed indicates no response was obtained from the API.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the call was cancelled or timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Response errors
const (
	// ErrCodeInvalidResponse indicates a 2xx response that could not be used.
	ErrCodeInvalidResponse ErrorCode = "INVALID_RESPONSE"
	// ErrCodeInternal indicates a bug or an unexpected local failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// retryableCodes marks codes where repeating the same call may succeed.
// The client itself never retries.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
	ErrCodeRateLimited:      true,
	ErrCodeExternalService:  true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

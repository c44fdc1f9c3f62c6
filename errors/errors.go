package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the structured error returned by configuration checks and local
// guards.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be repeated as is.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the HTTP status the error originated from, 0 for local errors.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the message, followed by the cause when one is set.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// MissingField creates an error for a required field. The message is used
// verbatim; field is recorded in Details.
func MissingField(field, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("Missing required field: %s", field)
	}
	return &AppError{
		Code: ErrCodeMissingField, Message: message,
		Details: map[string]any{"field": field},
	}
}

// InvalidFormat creates an error for a field with an unusable value.
func InvalidFormat(field, message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidFormat, Message: message,
		Details: map[string]any{"field": field},
	}
}

// Validation creates an error for input that failed validation.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// InvalidResponse creates an error for a successful response whose payload
// does not have the documented shape.
func InvalidResponse(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidResponse, Message: message}
}

// Internal wraps an unexpected local failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "unexpected client error", Cause: cause,
	}
}

// FromStatus maps an HTTP status returned by the API to an AppError.
func FromStatus(status int, message string) *AppError {
	code := ErrCodeExternalService
	switch {
	case status == http.StatusUnauthorized:
		code = ErrCodeUnauthorized
	case status == http.StatusForbidden:
		code = ErrCodeForbidden
	case status == http.StatusNotFound:
		code = ErrCodeNotFound
	case status == http.StatusConflict:
		code = ErrCodeConflict
	case status == http.StatusTooManyRequests:
		code = ErrCodeRateLimited
	case status == http.StatusUnprocessableEntity:
		code = ErrCodeUnprocessable
	case status >= 400 && status < 500:
		code = ErrCodeInvalidInput
	}
	return New(code, message, status)
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

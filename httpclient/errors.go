package httpclient

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/kbukum/bukku-go/errors"
)

// APIError is the single runtime error kind returned by the pipeline.
//
// StatusCode is set only when a non-2xx response was received. A zero
// StatusCode means no usable response exists: the transport failed, or a
// successful body could not be decoded.
type APIError struct {
	Message    string
	StatusCode int
	// Payload is the decoded JSON body of a failed response, or its raw text
	// when the body is not JSON.
	Payload any
	Body    []byte
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the transport or decode error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// HasStatus reports whether a non-2xx response was received.
func (e *APIError) HasStatus() bool {
	return e.StatusCode != 0
}

// ToAppError maps the failure onto the nearest errors.AppError.
func (e *APIError) ToAppError() *errors.AppError {
	if !e.HasStatus() {
		if stderrors.Is(e.Err, ErrDecode) {
			return errors.InvalidResponse(e.Message).WithCause(e)
		}
		if stderrors.Is(e.Err, context.DeadlineExceeded) || stderrors.Is(e.Err, context.Canceled) {
			return errors.New(errors.ErrCodeTimeout, e.Message, http.StatusGatewayTimeout).WithCause(e)
		}
		return errors.New(errors.ErrCodeConnectionFailed, e.Message, http.StatusBadGateway).WithCause(e)
	}
	appErr := errors.FromStatus(e.StatusCode, e.Message).WithCause(e)
	if e.Payload != nil {
		appErr = appErr.WithDetail("payload", e.Payload)
	}
	return appErr
}

func newStatusError(resp *TransportResponse) *APIError {
	text := resp.StatusText
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return &APIError{
		Message:    fmt.Sprintf("API request failed: %d %s", resp.StatusCode, text),
		StatusCode: resp.StatusCode,
		Payload:    decodePayload(resp.Body),
		Body:       resp.Body,
	}
}

func newTransportError(err error) *APIError {
	return &APIError{Message: err.Error(), Err: err}
}

// ErrDecode marks a successful response whose body could not be decoded.
var ErrDecode = stderrors.New("decode response")

func newDecodeError(body []byte, err error) *APIError {
	return &APIError{
		Message: "decode response: " + err.Error(),
		Payload: string(body),
		Body:    body,
		Err:     fmt.Errorf("%w: %w", ErrDecode, err),
	}
}

// decodePayload returns the JSON value of body, or the raw text.
func decodePayload(body []byte) any {
	if len(body) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}

// AsAPIError extracts an *APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsTransportError reports whether err is a failure that happened before
// any response was received.
func IsTransportError(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && !apiErr.HasStatus() && !stderrors.Is(apiErr.Err, ErrDecode)
}

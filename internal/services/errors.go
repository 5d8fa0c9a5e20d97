package services

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes rendered in the "Code" field of error responses
const (
	CodeBadRequest           = "BadRequestError"
	CodeNotFound             = "NotFoundError"
	CodeMethodNotAllowed     = "MethodNotAllowedError"
	CodeUnsupportedMediaType = "UnsupportedMediaType"
	CodeTooManyRequests      = "TooManyRequestsError"
	CodeInternalServer       = "InternalServerError"
)

// ViewError is an error that maps to a specific HTTP status.
// Services return it; the routing layer renders it.
type ViewError struct {
	Code       string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *ViewError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *ViewError) Unwrap() error {
	return e.Err
}

// NewBadRequestError signals invalid client input (400)
func NewBadRequestError(message string) *ViewError {
	return &ViewError{Code: CodeBadRequest, StatusCode: http.StatusBadRequest, Message: message}
}

// NewNotFoundError signals a missing resource (404); message is the missing key
func NewNotFoundError(message string, err error) *ViewError {
	return &ViewError{Code: CodeNotFound, StatusCode: http.StatusNotFound, Message: message, Err: err}
}

// NewMethodNotAllowedError signals an unsupported method on a known route (405)
func NewMethodNotAllowedError(method string) *ViewError {
	return &ViewError{
		Code:       CodeMethodNotAllowed,
		StatusCode: http.StatusMethodNotAllowed,
		Message:    fmt.Sprintf("Unsupported method: %s", method),
	}
}

// NewUnsupportedMediaTypeError signals a request body of an unaccepted type (415)
func NewUnsupportedMediaTypeError(contentType string) *ViewError {
	return &ViewError{
		Code:       CodeUnsupportedMediaType,
		StatusCode: http.StatusUnsupportedMediaType,
		Message:    fmt.Sprintf("Unsupported media type: %s", contentType),
	}
}

// NewTooManyRequestsError signals the rate limit was exceeded (429)
func NewTooManyRequestsError(message string) *ViewError {
	return &ViewError{Code: CodeTooManyRequests, StatusCode: http.StatusTooManyRequests, Message: message}
}

// NewInternalServerError wraps an unexpected failure (500)
func NewInternalServerError(message string, err error) *ViewError {
	return &ViewError{Code: CodeInternalServer, StatusCode: http.StatusInternalServerError, Message: message, Err: err}
}

// AsViewError extracts a ViewError from err, if there is one
func AsViewError(err error) (*ViewError, bool) {
	var viewErr *ViewError
	if errors.As(err, &viewErr) {
		return viewErr, true
	}
	return nil, false
}

// IsBadRequest checks if err is a client input error
func IsBadRequest(err error) bool {
	viewErr, ok := AsViewError(err)
	return ok && viewErr.Code == CodeBadRequest
}

// IsNotFound checks if err is a not-found error
func IsNotFound(err error) bool {
	viewErr, ok := AsViewError(err)
	return ok && viewErr.Code == CodeNotFound
}

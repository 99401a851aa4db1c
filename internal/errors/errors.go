package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound   = New(ErrCodeNotFound, "resource not found")
	ErrValidation = New(ErrCodeValidation, "validation error")
	ErrFormat     = New(ErrCodeFormat, "format error")
	ErrRender     = New(ErrCodeRender, "render error")
	ErrHTTPClient = New(ErrCodeHTTPClient, "http client error")
	ErrSystem     = New(ErrCodeSystemError, "system error")
	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:   http.StatusNotFound,
		ErrValidation: http.StatusBadRequest,
		ErrFormat:     http.StatusBadRequest,
		ErrRender:     http.StatusUnprocessableEntity,
		ErrHTTPClient: http.StatusInternalServerError,
		ErrSystem:     http.StatusInternalServerError,
	}
)

const (
	ErrCodeHTTPClient  = "http_client_error"
	ErrCodeSystemError = "system_error"
	ErrCodeNotFound    = "not_found"
	ErrCodeValidation  = "validation_error"
	ErrCodeFormat      = "format_error"
	ErrCodeRender      = "render_error"
	ErrCodeRateLimited = "rate_limited"
)

// codeOrder decides the code of an error marked with more than one sentinel
var codeOrder = []*InternalError{ErrValidation, ErrFormat, ErrNotFound, ErrRender, ErrHTTPClient, ErrSystem}

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// New creates a new InternalError
func New(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsFormat checks if an error is a format error
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsRender checks if an error is a render error
func IsRender(err error) bool {
	return errors.Is(err, ErrRender)
}

// IsHTTPClient checks if an error is an http client error
func IsHTTPClient(err error) bool {
	return errors.Is(err, ErrHTTPClient)
}

// CodeFromErr returns the machine-readable code of the sentinel err is marked
// with, or ErrCodeSystemError for unmarked errors.
func CodeFromErr(err error) string {
	for _, sentinel := range codeOrder {
		if errors.Is(err, sentinel) {
			return sentinel.Code
		}
	}
	return ErrCodeSystemError
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}

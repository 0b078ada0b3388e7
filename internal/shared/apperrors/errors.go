package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes shared across every domain. Each code maps to exactly one
// HTTP status at the request boundary.
const (
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeUploadFailed     = "UPLOAD_FAILED"
	CodeStoreError       = "STORE_ERROR"
)

// Error is the coded error carried between layers. Message is safe to
// show to the caller; Err keeps the underlying cause for logs.
type Error struct {
	Code       string
	Message    string
	Violations []string // populated for VALIDATION_FAILED only
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ============================================
// FACTORY FUNCTIONS
// ============================================

// NewUnauthorized builds an UNAUTHORIZED error.
func NewUnauthorized(message string) *Error {
	if message == "" {
		message = "Authentication required"
	}
	return &Error{Code: CodeUnauthorized, Message: message}
}

// NewNotFound builds a NOT_FOUND error for the named entity.
func NewNotFound(entity string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", entity),
	}
}

// NewValidationFailed builds a VALIDATION_FAILED error carrying every
// violation. The message is the full concatenated list, never just the
// first failure.
func NewValidationFailed(violations []string) *Error {
	return &Error{
		Code:       CodeValidationFailed,
		Message:    strings.Join(violations, "; "),
		Violations: violations,
	}
}

// NewUploadFailed wraps an asset-storage failure.
func NewUploadFailed(err error) *Error {
	return &Error{
		Code:    CodeUploadFailed,
		Message: "File upload failed",
		Err:     err,
	}
}

// NewStoreError wraps a persistence failure.
func NewStoreError(err error) *Error {
	return &Error{
		Code:    CodeStoreError,
		Message: "Storage operation failed",
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING
// ============================================

func is(err error, code string) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}

func IsUnauthorized(err error) bool     { return is(err, CodeUnauthorized) }
func IsNotFound(err error) bool         { return is(err, CodeNotFound) }
func IsValidationFailed(err error) bool { return is(err, CodeValidationFailed) }
func IsUploadFailed(err error) bool     { return is(err, CodeUploadFailed) }
func IsStoreError(err error) bool       { return is(err, CodeStoreError) }

// GetCode returns the error code, or STORE_ERROR for unknown errors so
// unexpected failures still surface as a generic 500.
func GetCode(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeStoreError
}

// GetMessage returns the caller-facing message for err.
func GetMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// GetViolations returns the violation list for validation errors,
// nil otherwise.
func GetViolations(err error) []string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Violations
	}
	return nil
}

// HTTPStatus maps an error to its boundary status code.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidationFailed:
		return http.StatusBadRequest
	case CodeUploadFailed, CodeStoreError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// internal/common/errors/errors.go
// Package errors provides standardized error handling for the submission pipeline.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeStoreUnavailable  ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeStoreAppendFailed ErrorCode = "STORE_APPEND_FAILED"
	ErrCodeRateLimited       ErrorCode = "RATE_LIMITED"
	ErrCodeInvalidPayload    ErrorCode = "INVALID_PAYLOAD"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewStoreUnavailableError signals that the sheet handle was never established.
func NewStoreUnavailableError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreUnavailable,
		Message:   "Submission store is not available",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreAppendFailedError signals that the append call failed for a valid submission.
func NewStoreAppendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreAppendFailed,
		Message:   "Failed to record submission",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError summarises a rejected payload; the violation list
// itself travels alongside in the handler output, not inside the error.
func NewValidationFailedError(count int) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Submission data validation failed",
		Details:   fmt.Sprintf("%d validation errors", count),
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidPayloadError signals a request body that could not be decoded at all.
func NewInvalidPayloadError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPayload,
		Message:   "Request body is not valid JSON",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewRateLimitedError signals that the client exceeded the submission quota.
func NewRateLimitedError(clientAddr string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRateLimited,
		Message:   "Too many submissions, please try again later",
		Details:   fmt.Sprintf("client: %s", clientAddr),
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps any unexpected fault. Details stay server-side; the
// HTTP layer only ever exposes the generic message.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "An internal server error occurred",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatusMapping maps internal error codes to HTTP response status codes.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeValidationFailed:  http.StatusUnprocessableEntity,
	ErrCodeInvalidPayload:    http.StatusBadRequest,
	ErrCodeRateLimited:       http.StatusTooManyRequests,
	ErrCodeStoreUnavailable:  http.StatusServiceUnavailable,
	ErrCodeStoreAppendFailed: http.StatusInternalServerError,
	ErrCodeInternal:          http.StatusInternalServerError,
}

// HTTPStatus returns the status code for an error code, defaulting to 500.
func HTTPStatus(code ErrorCode) int {
	if status, ok := HTTPStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Normalize coerces any error into a StandardError so the transport layer
// never leaks raw error detail for unexpected faults.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return NewInternalError(err)
}

// IsCode reports whether err is a StandardError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	stdErr, ok := err.(*StandardError)
	return ok && stdErr.Code == code
}

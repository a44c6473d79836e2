// Package lerr defines the structured error type and stable error codes
// used across academiclint.
package lerr

import (
	"errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes.
type ErrorCode string

const (
	// ValidationFailed indicates invalid input text or arguments.
	ValidationFailed ErrorCode = "VALIDATION_FAILED"
	// ModelUnavailable indicates the NLP backend could not be initialized.
	ModelUnavailable ErrorCode = "MODEL_UNAVAILABLE"
	// ProcessingFailed indicates the NLP pipeline errored on a document.
	ProcessingFailed ErrorCode = "PROCESSING_FAILED"
	// ParsingFailed indicates a source file could not be parsed.
	ParsingFailed ErrorCode = "PARSING_FAILED"
	// ConfigInvalid indicates a bad configuration value or file.
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// DetectorFailed indicates a detector panicked or errored.
	DetectorFailed ErrorCode = "DETECTOR_FAILED"
	// InternalError indicates an unexpected failure.
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// Error is a structured error with a stable code and a human-readable
// message. The cause is preserved for errors.Is/As but excluded from JSON.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	cause   error
}

// New creates a structured error.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a structured error with an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// WithDetails attaches extra context to the error.
func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.cause }

// CodeOf returns the error code of err if it is or wraps a structured
// error, or InternalError otherwise.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return InternalError
}

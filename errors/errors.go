// Package errors provides the coded error type used by svckit's registry
// operations. The reference layer itself (serviceref) never produces errors;
// these cover the registry surface: bad registration options, unknown
// references, withdrawn registrations.
package errors

import "fmt"

// ErrorCode is a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates a malformed argument, such as a nil
	// instance or an empty interface id.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeValidation indicates registration options or configuration
	// failed struct validation.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"
	// ErrCodeNotFound indicates a reference that does not resolve to a live
	// registration.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeIncompatible indicates an instance that does not implement the
	// interface it was registered or requested under.
	ErrCodeIncompatible ErrorCode = "INCOMPATIBLE_TYPE"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error is the unified svckit error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// --- Common constructors ---

// InvalidArgument creates an Error for a malformed argument.
func InvalidArgument(message string) *Error {
	return &Error{Code: ErrCodeInvalidArgument, Message: message}
}

// Validation creates an Error for failed option or config validation.
func Validation(message string) *Error {
	return &Error{Code: ErrCodeValidation, Message: message}
}

// NotFound creates an Error for a reference or lookup that resolves to
// nothing.
func NotFound(resource, id string) *Error {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("no live registration for %s", resource),
		Details: details,
	}
}

// Incompatible creates an Error for an instance that does not implement the
// named interface.
func Incompatible(interfaceID string) *Error {
	return &Error{
		Code:    ErrCodeIncompatible,
		Message: fmt.Sprintf("instance does not implement %s", interfaceID),
		Details: map[string]any{"interface_id": interfaceID},
	}
}

// CodeOf extracts the ErrorCode from err, or ErrCodeInternal for non-svckit
// errors. Works through wrapped chains.
func CodeOf(err error) ErrorCode {
	var e *Error
	if As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

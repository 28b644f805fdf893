package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the seqflow library

var (
	// ErrEmptyStream indicates that the head or tail of an empty stream node
	// was requested
	ErrEmptyStream = errors.New("empty stream access")

	// ErrNotPrimed indicates that a value was delivered to a task that was
	// never primed
	ErrNotPrimed = errors.New("task not primed")

	// ErrAlreadyClosed indicates that a delivery or close signal was sent to
	// a task that has already closed
	ErrAlreadyClosed = errors.New("task already closed")

	// ErrDepthExceeded indicates that a stream walk exceeded its configured
	// safe depth
	ErrDepthExceeded = errors.New("recursion depth exceeded")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsContractViolation returns true if the error reports misuse of a library
// precondition rather than a transient condition. Contract violations are
// never retried internally; they always surface to the caller.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrEmptyStream) ||
		errors.Is(err, ErrNotPrimed) ||
		errors.Is(err, ErrAlreadyClosed) ||
		errors.Is(err, ErrDepthExceeded)
}

// OperationError wraps a failure with the module, operation, and optional
// context needed to identify the violated precondition.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates an OperationError for the given module and operation.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{Module: module, Operation: operation, Cause: cause}
}

// WithContext attaches additional context and returns the same instance for chaining.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s.%s failed: %v (%s)", e.Module, e.Operation, e.Cause, e.Context)
	}
	return fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{Module: module, Field: field, Value: value, Reason: reason}
}

// WithHint attaches a remediation hint and returns the same instance for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: invalid %s=%v (%s) - %s", e.Module, e.Field, e.Value, e.Reason, e.Hint)
	}
	return fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
}

// Unwrap makes ValidationError match ErrInvalidConfiguration with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// IsValidationError returns true if the error is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrEmptyStream", ErrEmptyStream, "empty stream access"},
		{"ErrNotPrimed", ErrNotPrimed, "task not primed"},
		{"ErrAlreadyClosed", ErrAlreadyClosed, "task already closed"},
		{"ErrDepthExceeded", ErrDepthExceeded, "recursion depth exceeded"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsContractViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"empty stream", ErrEmptyStream, true},
		{"not primed", ErrNotPrimed, true},
		{"already closed", ErrAlreadyClosed, true},
		{"depth exceeded", ErrDepthExceeded, true},
		{"invalid configuration", ErrInvalidConfiguration, false},
		{"wrapped empty stream", fmt.Errorf("head: %w", ErrEmptyStream), true},
		{"wrapped already closed", &OperationError{Module: "pipeline", Operation: "Deliver", Cause: ErrAlreadyClosed}, true},
		{"random error", errors.New("random"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContractViolation(tt.err); got != tt.want {
				t.Errorf("IsContractViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "without context",
			err: &OperationError{
				Module:    "lazy",
				Operation: "Head",
				Cause:     ErrEmptyStream,
			},
			want: "lazy.Head failed: empty stream access",
		},
		{
			name: "with context",
			err: &OperationError{
				Module:    "pipeline",
				Operation: "Deliver",
				Cause:     ErrAlreadyClosed,
				Context:   "task 9b2d filter(pend)",
			},
			want: "pipeline.Deliver failed: task already closed (task 9b2d filter(pend))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	opErr := NewOperationError("test", "Op", cause)

	if unwrapped := opErr.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(opErr, cause) {
		t.Error("OperationError should wrap the cause error")
	}
}

func TestOperationError_WithContext(t *testing.T) {
	err := NewOperationError("test", "op", errors.New("err")).
		WithContext("additional context")

	if err.Context != "additional context" {
		t.Errorf("Context = %q, want %q", err.Context, "additional context")
	}

	// Should return same instance for chaining
	result := err.WithContext("new context")
	if result != err {
		t.Error("WithContext should return the same instance")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "lazy",
				Field:  "maxDepth",
				Value:  -1,
				Reason: "must be positive",
			},
			want: "lazy: invalid maxDepth=-1 (must be positive)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "pipeline",
				Field:  "cron",
				Value:  "",
				Reason: "cannot be empty",
				Hint:   "use a standard cron expression such as @hourly",
			},
			want: "pipeline: invalid cron= (cannot be empty) - use a standard cron expression such as @hourly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("test", "field", 0, "test")

	if unwrapped := verr.Unwrap(); unwrapped != ErrInvalidConfiguration {
		t.Errorf("Unwrap() = %v, want ErrInvalidConfiguration", unwrapped)
	}

	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should wrap ErrInvalidConfiguration")
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation error", NewValidationError("test", "field", 0, "test"), true},
		{"wrapped validation error", fmt.Errorf("config: %w", NewValidationError("test", "field", 0, "test")), true},
		{"operation error", NewOperationError("test", "op", errors.New("test")), false},
		{"standard error", errors.New("test"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidationError(tt.err); got != tt.want {
				t.Errorf("IsValidationError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Run("ValidationError message components", func(t *testing.T) {
		err := NewValidationError("lazy", "maxDepth", 42, "must be less than 32").
			WithHint("use a smaller walk depth")

		msg := err.Error()

		expectedParts := []string{"lazy", "maxDepth", "42", "must be less than 32", "use a smaller walk depth"}
		for _, part := range expectedParts {
			if !strings.Contains(msg, part) {
				t.Errorf("error message should contain %q, got %q", part, msg)
			}
		}
	})

	t.Run("OperationError message components", func(t *testing.T) {
		err := NewOperationError("pipeline", "Pump", errors.New("source read failed")).
			WithContext("entry task 2")

		msg := err.Error()

		expectedParts := []string{"pipeline", "Pump", "source read failed", "entry task 2"}
		for _, part := range expectedParts {
			if !strings.Contains(msg, part) {
				t.Errorf("error message should contain %q, got %q", part, msg)
			}
		}
	})
}

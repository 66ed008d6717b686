package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("max index %d out of range", 9999)
	if got, want := err.Error(), "max index 9999 out of range"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Error("errors.As failed to match ConfigError")
	}
}

func TestCalculationError_Unwrap(t *testing.T) {
	cause := errors.New("linear history exceeds budget")
	err := CalculationError{Cause: cause}

	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), cause.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to find the wrapped cause")
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "k", Message: "must not exceed 150"}
	msg := err.Error()
	if !strings.Contains(msg, `"k"`) || !strings.Contains(msg, "must not exceed 150") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestMemoryError(t *testing.T) {
	err := MemoryError{Requested: 2048, Available: 1024, Limit: 512}
	msg := err.Error()
	for _, want := range []string{"2048", "1024", "512"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
	var memErr MemoryError
	if !errors.As(fmt.Errorf("compute: %w", error(err)), &memErr) {
		t.Error("errors.As failed to match wrapped MemoryError")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("boom")
	wrapped := WrapError(base, "reading F(%d)", 42)
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its cause")
	}
	if got := wrapped.Error(); !strings.HasPrefix(got, "reading F(42): ") {
		t.Errorf("unexpected wrapped message: %q", got)
	}
}

func TestIsContextError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("calc: %w", context.Canceled), true},
		{"other", errors.New("other"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

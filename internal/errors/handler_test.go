package apperrors

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHandleCalculationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"nil error", nil, ExitSuccess, ""},
		{"deadline exceeded", context.DeadlineExceeded, ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, ExitErrorCanceled, "Canceled"},
		{"wrapped cancellation", WrapError(context.Canceled, "run aborted"), ExitErrorCanceled, "Canceled"},
		{"memory error", MemoryError{Requested: 10, Available: 5, Limit: 8}, ExitErrorGeneric, "Memory"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := HandleCalculationError(tt.err, time.Second, &buf, nil)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantText != "" && !strings.Contains(buf.String(), tt.wantText) {
				t.Errorf("output %q missing %q", buf.String(), tt.wantText)
			}
		})
	}
}

func TestHandleCalculationError_ZeroDurationOmitsSuffix(t *testing.T) {
	var buf bytes.Buffer
	HandleCalculationError(context.DeadlineExceeded, 0, &buf, nil)
	if strings.Contains(buf.String(), "after") {
		t.Errorf("output %q should not mention elapsed time", buf.String())
	}
}

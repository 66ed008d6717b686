package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// SetupLifecycle creates a context that will be canceled either when the
// timeout expires or when a termination signal (SIGINT, SIGTERM) is
// received, whichever happens first.
//
// Parameters:
//   - ctx: The parent context.
//   - timeout: The maximum duration for the operation.
//
// Returns:
//   - context.Context: A context with both timeout and signal handling.
//   - func(): A cleanup function releasing both; call it via defer.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, func()) {
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

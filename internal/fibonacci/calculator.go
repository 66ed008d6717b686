// Package fibonacci provides the three interchangeable strategies for
// computing exact Fibonacci numbers over the decimal bignum engine: a linear
// dynamic-programming sweep, a fixed-round fast-doubling recursion, and an
// optimized doubling variant that skips the leading zero rounds. All
// strategies produce bit-identical results; they differ only in cost.
package fibonacci

//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	"github.com/jwang0306/fibdrv/internal/bignum"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibdrv_calculations_total",
			Help: "The total number of Fibonacci calculations processed",
		},
		[]string{"algorithm", "status"},
	)
	calculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fibdrv_calculation_duration_seconds",
			Help: "The duration of Fibonacci calculations in seconds",
		},
		[]string{"algorithm"},
	)
)

// Calculator defines the public interface for a Fibonacci strategy.
// It is the primary abstraction used by the device boundary, the HTTP
// service and the orchestration layer to run a computation without knowing
// which algorithm is behind it.
type Calculator interface {
	// Calculate executes the computation of F(k). It is safe for concurrent
	// use and supports cancellation through the provided context. Progress
	// updates are sent asynchronously to progressChan when non-nil.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - progressChan: The channel for sending progress updates (may be nil).
	//   - calcIndex: A unique index for the calculator instance.
	//   - k: The Fibonacci index to compute.
	//   - opts: Configuration options for the computation.
	//
	// Returns:
	//   - bignum.BigDecimal: The computed Fibonacci number.
	//   - error: An error if one occurred (e.g., context cancellation or
	//     resource exhaustion).
	Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, k uint64, opts Options) (bignum.BigDecimal, error)

	// Name returns the display name of the strategy (e.g., "Fast Doubling").
	Name() string
}

// coreCalculator defines the internal interface for a pure strategy
// implementation, free of metrics, tracing and progress plumbing.
type coreCalculator interface {
	CalculateCore(ctx context.Context, reporter ProgressReporter, k uint64, opts Options) (bignum.BigDecimal, error)
	Name() string
}

// FibCalculator implements Calculator by decorating a coreCalculator with
// cross-cutting concerns: Prometheus metrics, OpenTelemetry spans, debug
// logging and the adaptation of channel-based progress reporting onto the
// observer mechanism.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator constructs a FibCalculator around the given strategy
// implementation. It panics if core is nil, since a calculator without an
// algorithm cannot exist.
//
// Parameters:
//   - core: The core strategy to be wrapped.
//
// Returns:
//   - Calculator: A new FibCalculator instance implementing Calculator.
func NewCalculator(core coreCalculator) Calculator {
	if core == nil {
		panic("fibonacci: the coreCalculator implementation cannot be nil")
	}
	return &FibCalculator{core: core}
}

// Name returns the name of the wrapped strategy.
func (c *FibCalculator) Name() string {
	return c.core.Name()
}

// Calculate adapts progressChan into an observer subject and delegates to
// CalculateWithObservers. This is the channel-based entry point used by the
// orchestration layer.
func (c *FibCalculator) Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, k uint64, opts Options) (bignum.BigDecimal, error) {
	subject := NewProgressSubject()
	if progressChan != nil {
		subject.Register(NewChannelObserver(progressChan))
	}
	return c.CalculateWithObservers(ctx, subject, calcIndex, k, opts)
}

// CalculateWithObservers executes the computation with observer-based
// progress reporting, recording duration and outcome metrics around the core
// strategy call.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - subject: The progress subject with registered observers. If nil,
//     progress is ignored.
//   - calcIndex: A unique index for the calculator instance.
//   - k: The Fibonacci index to compute.
//   - opts: Configuration options for the computation.
//
// Returns:
//   - bignum.BigDecimal: The computed Fibonacci number.
//   - error: An error if one occurred.
func (c *FibCalculator) CalculateWithObservers(ctx context.Context, subject *ProgressSubject, calcIndex int, k uint64, opts Options) (result bignum.BigDecimal, err error) {
	tracer := otel.Tracer("fibonacci")
	ctx, span := tracer.Start(ctx, "Calculate")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		algoName := c.core.Name()
		calculationsTotal.WithLabelValues(algoName, status).Inc()
		calculationDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Uint64("k", k).
			Float64("duration", duration).
			Str("status", status).
			Msg("calculation completed")
	}()

	var reporter ProgressReporter
	if subject != nil {
		reporter = subject.AsProgressReporter(calcIndex)
	} else {
		reporter = func(float64) {}
	}

	result, err = c.core.CalculateCore(ctx, reporter, k, normalizeOptions(opts))
	if err == nil {
		reporter(1.0)
	}
	return result, err
}

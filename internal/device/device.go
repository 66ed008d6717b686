// Package device implements the sequential-access boundary through which the
// Fibonacci engine is consumed: a position-addressed device whose reads
// compute F(position) with the currently selected strategy and report the
// computation's wall-clock latency, whose writes select the strategy, and
// whose seek semantics — including the unconventional end-relative origin —
// reproduce the original driver's contract bit for bit.
package device

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"

	"github.com/jwang0306/fibdrv/internal/fibonacci"
	"github.com/jwang0306/fibdrv/internal/logging"
)

// ErrBusy is returned by Open when another session already holds the device.
// Contention is rejected immediately, never queued.
var ErrBusy = errors.New("device: busy")

// ErrClosed is returned by session operations after Close.
var ErrClosed = errors.New("device: session closed")

// ErrInvalidWhence is returned by Seek for an unknown origin.
var ErrInvalidWhence = errors.New("device: invalid whence")

var (
	deviceOpens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibdrv_device_opens_total",
			Help: "The total number of device open attempts",
		},
		[]string{"outcome"},
	)
	deviceReads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fibdrv_device_reads_total",
			Help: "The total number of device reads",
		},
	)
	deviceSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibdrv_device_selections_total",
			Help: "The total number of strategy selection writes",
		},
		[]string{"strategy"},
	)
)

// Device owns the boundary state: the index ceiling, the strategy selector
// and the session-exclusivity lock. The arithmetic core underneath has no
// notion of sessions; exclusivity is purely an admission-control decision of
// this layer.
type Device struct {
	factory  fibonacci.CalculatorFactory
	selector *Selector
	maxIndex uint64
	calcOpts fibonacci.Options
	logger   logging.Logger

	// sessions holds one token; TryLock-style acquisition keeps Open
	// non-blocking.
	sessions chan struct{}
}

// Option configures a Device during construction.
type Option func(*Device)

// WithMaxIndex overrides the position ceiling (default fibonacci.DefaultMaxIndex).
func WithMaxIndex(max uint64) Option {
	return func(d *Device) { d.maxIndex = max }
}

// WithLogger sets the structured logger (default: discard).
func WithLogger(logger logging.Logger) Option {
	return func(d *Device) { d.logger = logger }
}

// WithCalculationOptions sets the options passed to every strategy run.
func WithCalculationOptions(opts fibonacci.Options) Option {
	return func(d *Device) { d.calcOpts = opts }
}

// WithDefaultStrategy overrides the strategy active before any selection
// write (default: the linear sweep, selector byte 0).
func WithDefaultStrategy(name string) Option {
	return func(d *Device) { d.selector = NewSelector(name) }
}

// New creates a Device dispatching into the given strategy factory.
func New(factory fibonacci.CalculatorFactory, opts ...Option) *Device {
	d := &Device{
		factory:  factory,
		selector: NewSelector(fibonacci.StrategyLinear),
		maxIndex: fibonacci.DefaultMaxIndex,
		logger:   logging.NopLogger{},
		sessions: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// MaxIndex returns the position ceiling.
func (d *Device) MaxIndex() uint64 {
	return d.maxIndex
}

// Selector returns the device's strategy selector. Exposed so that
// non-session consumers (the HTTP service, the TUI) can share the same
// selection state.
func (d *Device) Selector() *Selector {
	return d.selector
}

// Open acquires the device for exclusive use. A concurrent open attempt
// fails immediately with ErrBusy rather than queueing, matching the
// original driver's trylock-on-open behavior.
//
// Returns:
//   - *Session: The exclusive session; release it with Close.
//   - error: ErrBusy when another session is active.
func (d *Device) Open() (*Session, error) {
	select {
	case d.sessions <- struct{}{}:
	default:
		deviceOpens.WithLabelValues("busy").Inc()
		d.logger.Debug("open rejected, device busy")
		return nil, ErrBusy
	}
	deviceOpens.WithLabelValues("granted").Inc()
	return &Session{dev: d}, nil
}

// ReadResult is the structured outcome of a session read. The elapsed time
// is a separately named field rather than an overloaded return value: the
// legacy contract reported nanoseconds through the read's return channel,
// which was routinely mistaken for a byte count.
type ReadResult struct {
	// Index is the position the result was computed for.
	Index uint64
	// Strategy is the registry name of the strategy that ran.
	Strategy string
	// Digits is the decimal rendering of F(Index), most-significant digit
	// first.
	Digits string
	// Elapsed is the wall-clock duration of the computation.
	Elapsed time.Duration
}

// Session is an exclusive handle on the device. It carries the read
// position; all methods are intended for a single caller and are not
// individually synchronized beyond the selector cell they share.
type Session struct {
	dev    *Device
	pos    uint64
	closed bool
}

// Position returns the current read position.
func (s *Session) Position() uint64 {
	return s.pos
}

// Seek repositions the session. Origins follow the io package constants:
// io.SeekStart sets position = offset, io.SeekCurrent adds the offset, and
// io.SeekEnd computes MaxIndex − offset — the original driver defined
// end-relative seeking as a distance back from the ceiling, not beyond it,
// and that quirk is part of the preserved contract. The resulting position
// is clamped into [0, MaxIndex].
//
// Parameters:
//   - offset: The requested offset for the chosen origin.
//   - whence: io.SeekStart, io.SeekCurrent or io.SeekEnd.
//
// Returns:
//   - int64: The position after the seek.
//   - error: ErrClosed or ErrInvalidWhence.
func (s *Session) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}

	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = int64(s.pos) + offset
	case io.SeekEnd:
		newPos = int64(s.dev.maxIndex) - offset
	default:
		return 0, ErrInvalidWhence
	}

	if newPos < 0 {
		newPos = 0
	}
	if newPos > int64(s.dev.maxIndex) {
		newPos = int64(s.dev.maxIndex)
	}
	s.pos = uint64(newPos)
	return newPos, nil
}

// Read computes F(position) with the currently selected strategy and
// returns the rendered digits together with the computation's wall-clock
// latency. The position is not advanced by reading; it only moves through
// Seek, as in the original driver.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//
// Returns:
//   - ReadResult: The digits, index, strategy and elapsed time.
//   - error: ErrClosed, an unknown-strategy error, or a strategy failure.
func (s *Session) Read(ctx context.Context) (ReadResult, error) {
	if s.closed {
		return ReadResult{}, ErrClosed
	}

	ctx, span := otel.Tracer("device").Start(ctx, "Read")
	defer span.End()

	name := s.dev.selector.Current()
	calc, err := s.dev.factory.Get(name)
	if err != nil {
		return ReadResult{}, err
	}

	start := time.Now()
	result, err := calc.Calculate(ctx, nil, 0, s.pos, s.dev.calcOpts)
	elapsed := time.Since(start)
	if err != nil {
		s.dev.logger.Error("read failed", err,
			logging.Uint64("k", s.pos),
			logging.String("strategy", name),
		)
		return ReadResult{}, err
	}

	deviceReads.Inc()
	s.dev.logger.Debug("read complete",
		logging.Uint64("k", s.pos),
		logging.String("strategy", name),
		logging.Int64("elapsed_ns", elapsed.Nanoseconds()),
	)

	return ReadResult{
		Index:    s.pos,
		Strategy: name,
		Digits:   result.String(),
		Elapsed:  elapsed,
	}, nil
}

// ReadInto is the legacy-compatible read: it fills buf with the decimal
// digits of F(position), most-significant first (truncating to the buffer
// length), and returns the elapsed computation time in nanoseconds.
//
// The return value is NOT a byte count. Callers needing the number of
// digits delivered should use Read and len(ReadResult.Digits).
func (s *Session) ReadInto(ctx context.Context, buf []byte) (int64, error) {
	res, err := s.Read(ctx)
	if err != nil {
		return 0, err
	}
	copy(buf, res.Digits)
	return res.Elapsed.Nanoseconds(), nil
}

// Write interprets the first byte of p as a strategy selector: 0 selects
// the linear sweep, 1 the fixed-round doubling, 2 the leading-zero-skip
// doubling; any other value leaves the selection unchanged. The call
// acknowledges exactly 1 byte regardless of how many were supplied, the
// original driver's fixed success indicator.
func (s *Session) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 1, nil
	}

	name, changed := s.dev.selector.Select(p[0])
	if changed {
		deviceSelections.WithLabelValues(name).Inc()
		s.dev.logger.Info("strategy selected",
			logging.String("strategy", name),
			logging.Int("selector", int(p[0])),
		)
	}
	return 1, nil
}

// Close releases the device for the next caller. Closing an already closed
// session is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	<-s.dev.sessions
	return nil
}

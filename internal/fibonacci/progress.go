// This file contains progress reporting types used by the strategies.
package fibonacci

// ProgressUpdate is a data transfer object that carries the progress state of
// a computation from a calculator to its consumer (CLI spinner, TUI, tests).
type ProgressUpdate struct {
	// CalculatorIndex identifies the calculator instance, allowing consumers
	// to distinguish between multiple concurrent computations.
	CalculatorIndex int
	// Value is the normalized progress of the computation, from 0.0 to 1.0.
	Value float64
}

// ProgressReporter is the functional callback type core strategies use to
// report progress without being coupled to the channel-based communication of
// the broader application.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
type ProgressReporter func(progress float64)

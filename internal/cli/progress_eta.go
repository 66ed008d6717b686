package cli

import (
	"fmt"
	"time"
)

// ProgressWithETA extends ProgressState with an estimate of the time
// remaining, derived from the elapsed wall-clock time and the average
// progress so far.
type ProgressWithETA struct {
	*ProgressState
	startTime time.Time
}

// NewProgressWithETA creates a ProgressWithETA tracking the given number of
// calculators, with the clock started now.
func NewProgressWithETA(numCalculators int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numCalculators),
		startTime:     time.Now(),
	}
}

// UpdateWithETA records a new progress value for a specific calculator.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) {
	p.Update(index, value)
}

// GetETA returns the estimated time remaining. It extrapolates linearly from
// the average progress; before any progress has been reported it returns a
// negative duration, which FormatETA renders as unknown.
func (p *ProgressWithETA) GetETA() time.Duration {
	avg := p.CalculateAverage()
	if avg <= 0 {
		return -1
	}
	if avg >= 1 {
		return 0
	}
	elapsed := time.Since(p.startTime)
	return time.Duration(float64(elapsed) * (1 - avg) / avg)
}

// FormatETA renders an ETA for display. Negative means not yet estimable.
func FormatETA(eta time.Duration) string {
	switch {
	case eta < 0:
		return "--"
	case eta < time.Second:
		return "< 1s"
	default:
		return eta.Round(time.Second).String()
	}
}

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

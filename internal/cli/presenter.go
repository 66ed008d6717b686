package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/jwang0306/fibdrv/internal/errors"
	"github.com/jwang0306/fibdrv/internal/fibonacci"
	"github.com/jwang0306/fibdrv/internal/orchestration"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI
// output. It wraps the DisplayProgress function to provide a spinner and
// progress bar display during calculations.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing
// calculations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI
// output. It provides formatted, colorized output for calculation results in
// the command-line interface.
type CLIResultPresenter struct {
	// Quiet suppresses everything but the digits in PresentResult.
	Quiet bool
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the comparison summary table with strategy
// names, durations, and status in a formatted tabular layout. Uses manual
// padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum widths for proper alignment
	maxNameLen := 8     // "Strategy" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := comparisonDuration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sStrategy%s%s   %sDuration%s%s   %sStatus%s\n",
		ColorUnderline(), ColorReset(), padRight("", maxNameLen-8),
		ColorUnderline(), ColorReset(), padRight("", maxDurationLen-8),
		ColorUnderline(), ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ColorRed(), res.Err, ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ColorGreen(), ColorReset())
		}
		duration := comparisonDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ColorBlue(), res.Name, ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ColorYellow(), duration, ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

func comparisonDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return FormatExecutionDuration(d)
}

// padRight returns a string of spaces with the given length appended to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final calculation result using the CLI's
// DisplayResult function.
func (p CLIResultPresenter) PresentResult(result orchestration.CalculationResult, k uint64, verbose bool, out io.Writer) {
	DisplayResultWithConfig(out, result.Result, k, result.Duration, OutputConfig{
		Quiet:   p.Quiet,
		Verbose: verbose,
	})
}

// HandleError handles calculation errors and returns an appropriate exit
// code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

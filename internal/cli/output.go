// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatTruncatedDigits], [FormatExecutionDuration].

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/jwang0306/fibdrv/internal/bignum"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Quiet mode suppresses everything but the digits.
	Quiet bool
	// Verbose shows the full result value regardless of size.
	Verbose bool
	// JSONOutput selects machine-readable output (handled by the caller).
	JSONOutput bool
}

// FormatTruncatedDigits renders a digit string for terminal display. Values
// longer than TruncationLimit digits are shown as leading and trailing
// DisplayEdges digits with an ellipsis, unless verbose is set.
func FormatTruncatedDigits(digits string, verbose bool) string {
	if verbose || len(digits) <= TruncationLimit {
		return digits
	}
	return fmt.Sprintf("%s...%s", digits[:DisplayEdges], digits[len(digits)-DisplayEdges:])
}

// DisplayResult formats and prints the final calculation result. It shows
// the index, digit count and duration, then the value itself. For very large
// numbers the value is truncated unless verbose is true.
//
// Parameters:
//   - result: The calculation result.
//   - k: The index of the Fibonacci number calculated.
//   - duration: The time taken for the calculation.
//   - verbose: If true, prints the full number regardless of size.
//   - out: The io.Writer for the output.
func DisplayResult(result bignum.BigDecimal, k uint64, duration time.Duration, verbose bool, out io.Writer) {
	digits := result.String()
	durationStr := FormatExecutionDuration(duration)
	if duration == 0 {
		durationStr = "< 1µs"
	}

	fmt.Fprintf(out, "Result size: %s%d%s decimal digits.\n", ColorCyan(), len(digits), ColorReset())
	fmt.Fprintf(out, "Calculation time: %s%s%s\n", ColorYellow(), durationStr, ColorReset())
	fmt.Fprintf(out, "\nF(%d) = %s%s%s\n", k, ColorGreen(), FormatTruncatedDigits(digits, verbose), ColorReset())
	if !verbose && len(digits) > TruncationLimit {
		fmt.Fprintf(out, "(truncated; run with -v for all %d digits)\n", len(digits))
	}
}

// DisplayQuietResult outputs just the digits, suitable for scripting.
func DisplayQuietResult(out io.Writer, result bignum.BigDecimal) {
	fmt.Fprintln(out, result.String())
}

// DisplayResultWithConfig displays a result honoring the output
// configuration. This is the unified entry point for the non-JSON modes.
func DisplayResultWithConfig(out io.Writer, result bignum.BigDecimal, k uint64, duration time.Duration, config OutputConfig) {
	if config.Quiet {
		DisplayQuietResult(out, result)
		return
	}
	DisplayResult(result, k, duration, config.Verbose, out)
}

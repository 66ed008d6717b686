package cli

import (
	"os"
	"sync/atomic"
)

// ANSI escape codes used by the CLI output. Kept as plain constants; the
// accessor functions below gate them behind the global color switch.
const (
	ansiReset     = "\033[0m"
	ansiRed       = "\033[31m"
	ansiGreen     = "\033[32m"
	ansiYellow    = "\033[33m"
	ansiBlue      = "\033[34m"
	ansiCyan      = "\033[36m"
	ansiBold      = "\033[1m"
	ansiUnderline = "\033[4m"
)

// colorEnabled gates all ANSI output. 1 = enabled.
var colorEnabled atomic.Bool

func init() {
	// NO_COLOR (https://no-color.org) disables color when present, whatever
	// its value.
	_, noColor := os.LookupEnv("NO_COLOR")
	colorEnabled.Store(!noColor)
}

// SetColorEnabled switches colored output on or off globally.
func SetColorEnabled(enabled bool) {
	colorEnabled.Store(enabled)
}

func colorize(code string) string {
	if colorEnabled.Load() {
		return code
	}
	return ""
}

// ColorReset returns the reset escape code, or "" when color is disabled.
func ColorReset() string { return colorize(ansiReset) }

// ColorRed returns the error color.
func ColorRed() string { return colorize(ansiRed) }

// ColorGreen returns the success color.
func ColorGreen() string { return colorize(ansiGreen) }

// ColorYellow returns the warning color.
func ColorYellow() string { return colorize(ansiYellow) }

// ColorBlue returns the primary color.
func ColorBlue() string { return colorize(ansiBlue) }

// ColorCyan returns the secondary color.
func ColorCyan() string { return colorize(ansiCyan) }

// ColorBold returns the bold escape code.
func ColorBold() string { return colorize(ansiBold) }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return colorize(ansiUnderline) }

// CLIColorProvider adapts the CLI color palette to the apperrors.ColorProvider
// interface used by the shared error handler.
type CLIColorProvider struct{}

// Yellow returns the warning color.
func (CLIColorProvider) Yellow() string { return ColorYellow() }

// Reset returns the reset escape code.
func (CLIColorProvider) Reset() string { return ColorReset() }

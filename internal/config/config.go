// Package config provides the configuration management for the fibdrv
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/jwang0306/fibdrv/internal/errors"
	"github.com/jwang0306/fibdrv/internal/fibonacci"
)

const (
	// EnvPrefix is the prefix for all environment variables used by fibdrv.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "FIBDRV_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultK is the default Fibonacci index to calculate.
	DefaultK uint64 = 100
	// DefaultTimeout is the default calculation timeout.
	DefaultTimeout = 5 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultAlgo is the default strategy selection.
	DefaultAlgo = "all"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the Fibonacci index to calculate to the memory ceiling of
// the linear strategy.
type AppConfig struct {
	// K is the index of the Fibonacci number to be calculated.
	K uint64
	// Algo specifies the strategy to use ("all", "linear", "doubling",
	// "doubling-opt").
	Algo string
	// MaxIndex is the device position ceiling.
	MaxIndex uint64
	// Verify, if true, runs every strategy and cross-checks their results.
	Verify bool
	// Verbose, if true, instructs the application to display the full
	// calculated number.
	Verbose bool
	// Timeout sets the maximum duration for the calculation.
	Timeout time.Duration
	// MemoryBudget caps the estimated footprint of the linear strategy's
	// history, in bytes. Zero selects the built-in default.
	MemoryBudget uint64
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// Interactive, if true, starts the terminal device console.
	Interactive bool
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses spinners, banners, and informational messages.
	Quiet bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
}

// ToCalculationOptions converts the application configuration into
// fibonacci.Options for use by the calculators.
func (c AppConfig) ToCalculationOptions() fibonacci.Options {
	return fibonacci.Options{
		MemoryBudget: c.MemoryBudget,
	}
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures that numerical values are within valid ranges and that the
// chosen strategy is supported.
//
// Parameters:
//   - availableAlgos: A slice of strings listing the valid strategy names
//     (e.g., ["linear", "doubling"]).
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.K > c.MaxIndex {
		return apperrors.NewConfigError("index %d exceeds the device ceiling of %d", c.K, c.MaxIndex)
	}
	isAlgoAvailable := false
	for _, a := range availableAlgos {
		if a == c.Algo {
			isAlgoAvailable = true
			break
		}
	}
	if c.Algo != "all" && !isAlgoAvailable {
		return apperrors.NewConfigError("unrecognized strategy: '%s'. Valid strategies are: 'all' or [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// and handles the parsing process. After parsing, it performs validation on
// the resulting configuration.
//
// The function is designed to be testable by allowing the input arguments
// and output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//   - availableAlgos: A slice of valid strategy names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Strategy to use: 'all' (default) or one of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.Uint64Var(&config.K, "k", DefaultK, "Index k of the Fibonacci number to calculate.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.Uint64Var(&config.MaxIndex, "max-index", fibonacci.DefaultMaxIndex, "Largest index the device accepts.")
	fs.BoolVar(&config.Verify, "verify", false, "Run every strategy and cross-check the results.")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full value of the result (can be very long).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the calculation.")
	fs.Uint64Var(&config.MemoryBudget, "memory-budget", fibonacci.DefaultMemoryBudget, "Byte ceiling for the linear strategy's history.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the interactive device console.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}

// setCustomUsage installs a usage message grouping the flags by concern,
// which reads better than the alphabetical default for a dozen flags.
func setCustomUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: %s [options]\n\n", fs.Name())
		fmt.Fprintln(out, "Computes exact Fibonacci numbers over a decimal bignum engine.")
		fmt.Fprintln(out, "\nOptions:")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEnvironment variables with the %s prefix override unset flags\n", EnvPrefix)
		fmt.Fprintf(out, "(e.g. %sK, %sALGO, %sPORT).\n", EnvPrefix, EnvPrefix, EnvPrefix)
	}
}

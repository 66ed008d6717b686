package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/jwang0306/fibdrv/internal/cli"
	"github.com/jwang0306/fibdrv/internal/config"
	"github.com/jwang0306/fibdrv/internal/device"
	"github.com/jwang0306/fibdrv/internal/fibonacci"
	"github.com/jwang0306/fibdrv/internal/server"
	"github.com/jwang0306/fibdrv/internal/tui"
)

// Application represents the fibdrv application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument vector (typically os.Args).
//   - errWriter: The writer for parse errors and usage output.
//   - opts: Optional overrides (e.g., WithFactory for tests).
//
// Returns:
//   - *Application: The configured application.
//   - error: A parse or validation error; check IsHelpError for -h.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}

	availableAlgos := app.Factory.List()

	programName := "fibdrv"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode: HTTP server,
// interactive device console, or one-shot calculation.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if a.Config.Quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	if a.Config.NoColor {
		cli.SetColorEnabled(false)
	}

	if a.Config.ServerMode {
		return a.runServer()
	}

	if a.Config.Interactive {
		return a.runConsole(ctx)
	}

	return a.runCalculate(ctx, out)
}

// runServer starts the HTTP API and blocks until shutdown.
func (a *Application) runServer() int {
	srv := server.NewServer(a.Factory, a.Config)
	if err := srv.Start(); err != nil {
		return handleRunError(err, a.ErrWriter)
	}
	return 0
}

// runConsole launches the interactive device console.
func (a *Application) runConsole(ctx context.Context) int {
	ctx, cleanup := SetupLifecycle(ctx, a.Config.Timeout)
	defer cleanup()

	dev := device.New(a.Factory,
		device.WithMaxIndex(a.Config.MaxIndex),
		device.WithCalculationOptions(a.Config.ToCalculationOptions()),
	)
	return tui.Run(ctx, dev)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

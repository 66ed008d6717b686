package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jwang0306/fibdrv/internal/cli"
	apperrors "github.com/jwang0306/fibdrv/internal/errors"
	"github.com/jwang0306/fibdrv/internal/orchestration"
)

// runCalculate orchestrates the execution of the CLI calculation command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cleanup := SetupLifecycle(ctx, a.Config.Timeout)
	defer cleanup()

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config, a.Factory)
	if len(calculatorsToRun) == 0 {
		fmt.Fprintf(a.ErrWriter, "No strategy matches %q.\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet && !a.Config.JSONOutput {
		fmt.Fprintf(out, "Computing F(%d) with %d strateg%s...\n",
			a.Config.K, len(calculatorsToRun), pluralY(len(calculatorsToRun)))
	}

	// Choose progress reporter based on output mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet || a.Config.JSONOutput {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	results := orchestration.ExecuteCalculations(ctx, calculatorsToRun, a.Config, progressReporter, progressOut)

	if a.Config.JSONOutput {
		return a.writeJSONResults(results, out)
	}

	if a.Config.Quiet {
		if best := findBestResult(results); best != nil && resultsConsistent(results) {
			cli.DisplayQuietResult(out, best.Result)
			return apperrors.ExitSuccess
		}
	}

	presenter := cli.CLIResultPresenter{Quiet: a.Config.Quiet}
	return orchestration.AnalyzeComparisonResults(results, a.Config, presenter, out)
}

// jsonResult is the machine-readable rendering of a single strategy run.
type jsonResult struct {
	K         uint64 `json:"k"`
	Algorithm string `json:"algorithm"`
	Result    string `json:"result,omitempty"`
	Digits    int    `json:"digits,omitempty"`
	Duration  string `json:"duration"`
	Error     string `json:"error,omitempty"`
}

// writeJSONResults emits one JSON document holding every run, and derives
// the exit code from the same consistency rules as the table output.
func (a *Application) writeJSONResults(results []orchestration.CalculationResult, out io.Writer) int {
	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{
			K:         a.Config.K,
			Algorithm: res.Name,
			Duration:  res.Duration.String(),
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		} else {
			jr.Result = res.Result.String()
			jr.Digits = res.Result.NumDigits()
		}
		payload = append(payload, jr)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error encoding JSON: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	if findBestResult(results) == nil {
		return apperrors.ExitErrorGeneric
	}
	if !resultsConsistent(results) {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}

// findBestResult returns the fastest successful result, or nil if all runs
// failed.
func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var best *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil {
			if best == nil || results[i].Duration < best.Duration {
				best = &results[i]
			}
		}
	}
	return best
}

// resultsConsistent reports whether all successful runs agree on the value.
func resultsConsistent(results []orchestration.CalculationResult) bool {
	var first *orchestration.CalculationResult
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if first == nil {
			first = &results[i]
			continue
		}
		if !results[i].Result.Equal(first.Result) {
			return false
		}
	}
	return true
}

// handleRunError maps a mode-level failure onto an exit code.
func handleRunError(err error, errWriter io.Writer) int {
	fmt.Fprintf(errWriter, "Error: %v\n", err)
	if apperrors.IsContextError(err) {
		return apperrors.ExitErrorTimeout
	}
	return apperrors.ExitErrorGeneric
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

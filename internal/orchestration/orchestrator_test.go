package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jwang0306/fibdrv/internal/bignum"
	"github.com/jwang0306/fibdrv/internal/config"
	apperrors "github.com/jwang0306/fibdrv/internal/errors"
	"github.com/jwang0306/fibdrv/internal/fibonacci"
)

// stubCalculator returns a fixed value or error and reports one progress
// update so the reporter path is exercised.
type stubCalculator struct {
	name   string
	result string
	err    error
	delay  time.Duration
}

func (s *stubCalculator) Name() string { return s.name }

func (s *stubCalculator) Calculate(ctx context.Context, progressChan chan<- fibonacci.ProgressUpdate, calcIndex int, k uint64, opts fibonacci.Options) (bignum.BigDecimal, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if progressChan != nil {
		select {
		case progressChan <- fibonacci.ProgressUpdate{CalculatorIndex: calcIndex, Value: 1.0}:
		default:
		}
	}
	if s.err != nil {
		return bignum.BigDecimal{}, s.err
	}
	return bignum.MustParse(s.result), nil
}

// spyPresenter records which presentation calls were made.
type spyPresenter struct {
	tablePresented  bool
	resultPresented bool
	handledErr      error
	exitCode        int
}

func (p *spyPresenter) PresentComparisonTable(results []CalculationResult, out io.Writer) {
	p.tablePresented = true
}

func (p *spyPresenter) PresentResult(result CalculationResult, k uint64, verbose bool, out io.Writer) {
	p.resultPresented = true
}

func (p *spyPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	p.handledErr = err
	return p.exitCode
}

func TestExecuteCalculations_CollectsAllResults(t *testing.T) {
	calculators := []fibonacci.Calculator{
		&stubCalculator{name: "linear", result: "55"},
		&stubCalculator{name: "doubling", result: "55"},
		&stubCalculator{name: "broken", err: errors.New("boom")},
	}
	cfg := config.AppConfig{K: 10}

	var buf bytes.Buffer
	results := ExecuteCalculations(context.Background(), calculators, cfg, NullProgressReporter{}, &buf)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	// Results land at the calculator's index regardless of completion order.
	if results[0].Name != "linear" || results[1].Name != "doubling" || results[2].Name != "broken" {
		t.Errorf("result order scrambled: %v, %v, %v", results[0].Name, results[1].Name, results[2].Name)
	}
	if results[0].Err != nil || results[0].Result.String() != "55" {
		t.Errorf("linear result = (%v, %v)", results[0].Result.String(), results[0].Err)
	}
	if results[2].Err == nil {
		t.Error("broken calculator reported no error")
	}
	for i, r := range results {
		if r.Duration < 0 {
			t.Errorf("result %d has negative duration", i)
		}
	}
}

func TestExecuteCalculations_ReporterSeesUpdates(t *testing.T) {
	calculators := []fibonacci.Calculator{
		&stubCalculator{name: "a", result: "1"},
		&stubCalculator{name: "b", result: "1"},
	}

	var received int
	var mu sync.Mutex
	reporter := ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan fibonacci.ProgressUpdate, n int, out io.Writer) {
		defer wg.Done()
		for range ch {
			mu.Lock()
			received++
			mu.Unlock()
		}
	})

	ExecuteCalculations(context.Background(), calculators, config.AppConfig{K: 1}, reporter, io.Discard)

	mu.Lock()
	defer mu.Unlock()
	if received != 2 {
		t.Errorf("reporter saw %d updates, want 2", received)
	}
}

func TestExecuteCalculations_NoCalculators(t *testing.T) {
	results := ExecuteCalculations(context.Background(), nil, config.AppConfig{}, NullProgressReporter{}, io.Discard)
	if len(results) != 0 {
		t.Errorf("got %d results for empty input", len(results))
	}
}

func TestAnalyzeComparisonResults_Consistent(t *testing.T) {
	results := []CalculationResult{
		{Name: "linear", Result: bignum.MustParse("55"), Duration: 5 * time.Millisecond},
		{Name: "doubling", Result: bignum.MustParse("55"), Duration: 1 * time.Millisecond},
	}
	presenter := &spyPresenter{}
	var buf bytes.Buffer

	code := AnalyzeComparisonResults(results, config.AppConfig{K: 10}, presenter, &buf)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want success", code)
	}
	if !presenter.tablePresented || !presenter.resultPresented {
		t.Error("presenter calls missing")
	}
	if !strings.Contains(buf.String(), "Success") {
		t.Errorf("output missing global status: %q", buf.String())
	}
	// Sorted fastest-first among successes.
	if results[0].Name != "doubling" {
		t.Errorf("results[0] = %q, want fastest first", results[0].Name)
	}
}

func TestAnalyzeComparisonResults_Mismatch(t *testing.T) {
	results := []CalculationResult{
		{Name: "linear", Result: bignum.MustParse("55"), Duration: time.Millisecond},
		{Name: "doubling", Result: bignum.MustParse("56"), Duration: 2 * time.Millisecond},
	}
	presenter := &spyPresenter{}
	var buf bytes.Buffer

	code := AnalyzeComparisonResults(results, config.AppConfig{K: 10}, presenter, &buf)

	if code != apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if presenter.resultPresented {
		t.Error("result presented despite mismatch")
	}
	if !strings.Contains(buf.String(), "inconsistency") {
		t.Errorf("output missing mismatch diagnosis: %q", buf.String())
	}
}

func TestAnalyzeComparisonResults_AllFailed(t *testing.T) {
	boom := errors.New("boom")
	results := []CalculationResult{
		{Name: "linear", Err: boom},
		{Name: "doubling", Err: boom},
	}
	presenter := &spyPresenter{exitCode: apperrors.ExitErrorGeneric}
	var buf bytes.Buffer

	code := AnalyzeComparisonResults(results, config.AppConfig{K: 10}, presenter, &buf)

	if code != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want presenter's code", code)
	}
	if !errors.Is(presenter.handledErr, boom) {
		t.Errorf("HandleError received %v, want first failure", presenter.handledErr)
	}
}

func TestAnalyzeComparisonResults_FailuresSortAfterSuccesses(t *testing.T) {
	results := []CalculationResult{
		{Name: "broken", Err: errors.New("boom"), Duration: time.Nanosecond},
		{Name: "linear", Result: bignum.MustParse("55"), Duration: time.Second},
	}
	presenter := &spyPresenter{}

	code := AnalyzeComparisonResults(results, config.AppConfig{K: 10}, presenter, io.Discard)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, one success should carry", code)
	}
	if results[0].Name != "linear" {
		t.Errorf("results[0] = %q, successes must sort first", results[0].Name)
	}
}

package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	apperrors "github.com/jwang0306/fibdrv/internal/errors"
	"github.com/jwang0306/fibdrv/internal/fibonacci"
)

// fakeSpinner records calls without touching the terminal.
type fakeSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (f *fakeSpinner) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
}

func (f *fakeSpinner) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSpinner) UpdateSuffix(suffix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suffixes = append(f.suffixes, suffix)
}

func withFakeSpinner(t *testing.T) *fakeSpinner {
	t.Helper()
	fake := &fakeSpinner{}
	orig := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return fake }
	t.Cleanup(func() { newSpinner = orig })
	return fake
}

func TestFormatExecutionDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{3 * time.Second, "3s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestProgressState(t *testing.T) {
	ps := NewProgressState(2)
	ps.Update(0, 0.5)
	ps.Update(1, 1.0)
	if avg := ps.CalculateAverage(); avg != 0.75 {
		t.Errorf("average = %f, want 0.75", avg)
	}

	// Out-of-range updates are ignored.
	ps.Update(-1, 1.0)
	ps.Update(2, 1.0)
	if avg := ps.CalculateAverage(); avg != 0.75 {
		t.Errorf("average after invalid updates = %f, want 0.75", avg)
	}
}

func TestProgressState_Empty(t *testing.T) {
	ps := NewProgressState(0)
	if avg := ps.CalculateAverage(); avg != 0 {
		t.Errorf("average = %f, want 0 for empty state", avg)
	}
}

func TestProgressBar(t *testing.T) {
	bar := progressBar(0.5, 10)
	if len([]rune(bar)) != 10 {
		t.Fatalf("bar width = %d runes, want 10", len([]rune(bar)))
	}
	if !strings.HasPrefix(bar, "█████░") {
		t.Errorf("bar = %q", bar)
	}
	// Values outside [0,1] are clamped.
	if got := progressBar(2.0, 4); got != "████" {
		t.Errorf("overfull bar = %q", got)
	}
	if got := progressBar(-1.0, 4); got != "░░░░" {
		t.Errorf("negative bar = %q", got)
	}
}

func TestFormatETA(t *testing.T) {
	tests := []struct {
		eta  time.Duration
		want string
	}{
		{-1, "--"},
		{500 * time.Millisecond, "< 1s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.want {
			t.Errorf("FormatETA(%v) = %q, want %q", tt.eta, got, tt.want)
		}
	}
}

func TestDisplayProgress_CompletesOnChannelClose(t *testing.T) {
	fake := withFakeSpinner(t)

	ch := make(chan fibonacci.ProgressUpdate, 4)
	var wg sync.WaitGroup
	wg.Add(1)
	var buf bytes.Buffer
	go DisplayProgress(&wg, ch, 1, &buf)

	ch <- fibonacci.ProgressUpdate{CalculatorIndex: 0, Value: 0.5}
	close(ch)
	wg.Wait()

	if !fake.started || !fake.stopped {
		t.Errorf("spinner lifecycle: started=%v stopped=%v", fake.started, fake.stopped)
	}
	if !strings.Contains(buf.String(), "100.00%") {
		t.Errorf("final line missing 100%%: %q", buf.String())
	}
}

func TestDisplayProgress_ZeroCalculatorsDrains(t *testing.T) {
	ch := make(chan fibonacci.ProgressUpdate, 2)
	ch <- fibonacci.ProgressUpdate{}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	var buf bytes.Buffer
	DisplayProgress(&wg, ch, 0, &buf)

	if buf.Len() != 0 {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestFormatTruncatedDigits(t *testing.T) {
	short := strings.Repeat("7", TruncationLimit)
	if got := FormatTruncatedDigits(short, false); got != short {
		t.Errorf("short value truncated: %q", got)
	}

	long := strings.Repeat("7", TruncationLimit+1)
	got := FormatTruncatedDigits(long, false)
	want := strings.Repeat("7", DisplayEdges) + "..." + strings.Repeat("7", DisplayEdges)
	if got != want {
		t.Errorf("truncated = %q, want %q", got, want)
	}

	if got := FormatTruncatedDigits(long, true); got != long {
		t.Errorf("verbose value truncated: %q", got)
	}
}

func TestHandleError_MapsContextErrors(t *testing.T) {
	var buf bytes.Buffer
	p := CLIResultPresenter{}

	if code := p.HandleError(context.DeadlineExceeded, time.Second, &buf); code != apperrors.ExitErrorTimeout {
		t.Errorf("timeout exit code = %d", code)
	}
	if code := p.HandleError(context.Canceled, time.Second, &buf); code != apperrors.ExitErrorCanceled {
		t.Errorf("cancel exit code = %d", code)
	}
}

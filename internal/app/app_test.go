package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	apperrors "github.com/jwang0306/fibdrv/internal/errors"
	"github.com/jwang0306/fibdrv/internal/fibonacci"
)

func TestNew_Defaults(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"fibdrv"}, &errBuf)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if a.Config.K != 100 {
		t.Errorf("K = %d, want 100", a.Config.K)
	}
	if a.Config.Algo != "all" {
		t.Errorf("Algo = %q, want %q", a.Config.Algo, "all")
	}
	if a.Factory == nil {
		t.Error("Factory should default to the global registry")
	}
}

func TestNew_ParseError(t *testing.T) {
	var errBuf bytes.Buffer
	if _, err := New([]string{"fibdrv", "-algo", "matrix"}, &errBuf); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestNew_HelpFlag(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"fibdrv", "-h"}, &errBuf)
	if !IsHelpError(err) {
		t.Fatalf("IsHelpError(%v) = false, want true", err)
	}
}

func TestNew_WithFactory(t *testing.T) {
	factory := fibonacci.NewDefaultFactory()
	var errBuf bytes.Buffer
	a, err := New([]string{"fibdrv"}, &errBuf, WithFactory(factory))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if a.Factory != factory {
		t.Error("WithFactory was not applied")
	}
}

func TestRun_QuietCalculation(t *testing.T) {
	var out, errBuf bytes.Buffer
	a, err := New([]string{"fibdrv", "-k", "10", "-q"}, &errBuf)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d (stderr: %s)", code, apperrors.ExitSuccess, errBuf.String())
	}
	if got := strings.TrimSpace(out.String()); got != "55" {
		t.Errorf("quiet output = %q, want %q", got, "55")
	}
}

func TestRun_JSONCalculation(t *testing.T) {
	var out, errBuf bytes.Buffer
	a, err := New([]string{"fibdrv", "-k", "20", "-algo", "doubling", "-json"}, &errBuf)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d", code, apperrors.ExitSuccess)
	}
	got := out.String()
	for _, want := range []string{`"algorithm": "doubling"`, `"result": "6765"`, `"digits": 4`} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON output missing %s:\n%s", want, got)
		}
	}
}

func TestRun_ComparisonTable(t *testing.T) {
	var out, errBuf bytes.Buffer
	a, err := New([]string{"fibdrv", "-k", "50", "-verify", "-no-color"}, &errBuf)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d", code, apperrors.ExitSuccess)
	}
	got := out.String()
	if !strings.Contains(got, "12586269025") {
		t.Errorf("output missing F(50):\n%s", got)
	}
	for _, name := range []string{"linear", "doubling", "doubling-opt"} {
		if !strings.Contains(got, name) {
			t.Errorf("comparison output missing strategy %q", name)
		}
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-k", "10", "-version"}, true},
		{[]string{"-V"}, true},
		{[]string{"-k", "10"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "fibdrv") {
		t.Errorf("version output missing program name: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Go version") {
		t.Errorf("version output missing Go version: %q", buf.String())
	}
}

func TestFindBestResult_AllFailed(t *testing.T) {
	if best := findBestResult(nil); best != nil {
		t.Errorf("findBestResult(nil) = %v, want nil", best)
	}
}

package orchestration

import (
	"testing"

	"github.com/jwang0306/fibdrv/internal/config"
	"github.com/jwang0306/fibdrv/internal/fibonacci"
)

func TestGetCalculatorsToRun_All(t *testing.T) {
	factory := fibonacci.NewDefaultFactory()
	calcs := GetCalculatorsToRun(config.AppConfig{Algo: "all"}, factory)

	if len(calcs) != 3 {
		t.Fatalf("got %d calculators, want 3", len(calcs))
	}
	want := []string{"doubling", "doubling-opt", "linear"}
	for i, calc := range calcs {
		if calc.Name() != want[i] {
			t.Errorf("calcs[%d] = %q, want %q", i, calc.Name(), want[i])
		}
	}
}

func TestGetCalculatorsToRun_VerifyForcesAll(t *testing.T) {
	factory := fibonacci.NewDefaultFactory()
	calcs := GetCalculatorsToRun(config.AppConfig{Algo: "linear", Verify: true}, factory)
	if len(calcs) != 3 {
		t.Errorf("verify mode ran %d calculators, want all 3", len(calcs))
	}
}

func TestGetCalculatorsToRun_Single(t *testing.T) {
	factory := fibonacci.NewDefaultFactory()
	calcs := GetCalculatorsToRun(config.AppConfig{Algo: "doubling"}, factory)
	if len(calcs) != 1 || calcs[0].Name() != "doubling" {
		t.Errorf("calcs = %v", calcs)
	}
}

func TestGetCalculatorsToRun_Unknown(t *testing.T) {
	factory := fibonacci.NewDefaultFactory()
	if calcs := GetCalculatorsToRun(config.AppConfig{Algo: "matrix"}, factory); calcs != nil {
		t.Errorf("unknown strategy returned %v", calcs)
	}
}

package fibonacci

import (
	"context"
	"testing"
)

func TestDefaultFactory_List(t *testing.T) {
	f := NewDefaultFactory()
	names := f.List()

	want := []string{StrategyDoubling, StrategyDoublingOpt, StrategyLinear}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("List()[%d] = %s, want %s (sorted)", i, names[i], n)
		}
	}
}

func TestDefaultFactory_Get(t *testing.T) {
	f := NewDefaultFactory()

	calc, err := f.Get(StrategyDoublingOpt)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Cached instance is reused.
	again, err := f.Get(StrategyDoublingOpt)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if calc != again {
		t.Error("Get should return the cached instance")
	}

	if _, err := f.Get("nonexistent"); err == nil {
		t.Error("Get of unknown strategy should fail")
	}
}

func TestDefaultFactory_Create(t *testing.T) {
	f := NewDefaultFactory()

	first, err := f.Create(StrategyLinear)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := f.Create(StrategyLinear)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first == second {
		t.Error("Create should return fresh instances")
	}
}

func TestDefaultFactory_Register(t *testing.T) {
	f := NewDefaultFactory()

	if err := f.Register("custom", func() coreCalculator { return &FastDoublingOpt{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !f.Has("custom") {
		t.Error("Has should report the registered strategy")
	}

	calc := f.MustGet("custom")
	result, err := calc.Calculate(context.Background(), nil, 0, 10, Options{})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if result.String() != "55" {
		t.Errorf("F(10) = %s, want 55", result.String())
	}
}

func TestDefaultFactory_GetAll(t *testing.T) {
	f := NewDefaultFactory()
	all := f.GetAll()
	if len(all) != 3 {
		t.Errorf("GetAll() returned %d calculators, want 3", len(all))
	}
	for name, calc := range all {
		if calc == nil {
			t.Errorf("GetAll()[%s] is nil", name)
		}
	}
}

func TestDefaultFactory_MustGet_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet of unknown strategy should panic")
		}
	}()
	NewDefaultFactory().MustGet("nonexistent")
}

func TestGlobalFactory(t *testing.T) {
	if GlobalFactory() == nil {
		t.Fatal("GlobalFactory() returned nil")
	}
	for _, name := range []string{StrategyLinear, StrategyDoubling, StrategyDoublingOpt} {
		if !GlobalFactory().Has(name) {
			t.Errorf("global factory missing %s", name)
		}
	}
}

package fibonacci

import (
	"fmt"
	"sort"
)

// TestFactory is a CalculatorFactory backed by a fixed map of calculators.
// It lets tests inject mock strategies without touching the registry of
// creators that DefaultFactory manages.
type TestFactory struct {
	calculators map[string]Calculator
}

// NewTestFactory creates a TestFactory serving exactly the given calculators.
func NewTestFactory(calculators map[string]Calculator) *TestFactory {
	if calculators == nil {
		calculators = make(map[string]Calculator)
	}
	return &TestFactory{calculators: calculators}
}

// Create returns the injected calculator for the name.
func (f *TestFactory) Create(name string) (Calculator, error) {
	return f.Get(name)
}

// Get returns the injected calculator for the name.
func (f *TestFactory) Get(name string) (Calculator, error) {
	calc, ok := f.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return calc, nil
}

// List returns the sorted names of the injected calculators.
func (f *TestFactory) List() []string {
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register wraps the creator's core in a decorated Calculator and stores it.
func (f *TestFactory) Register(name string, creator func() coreCalculator) error {
	f.calculators[name] = NewCalculator(creator())
	return nil
}

// GetAll returns a copy of the injected calculator map.
func (f *TestFactory) GetAll() map[string]Calculator {
	result := make(map[string]Calculator, len(f.calculators))
	for name, calc := range f.calculators {
		result[name] = calc
	}
	return result
}

package fibonacci

// Note: CalculatorFactory's Register() uses the unexported coreCalculator
// type, so the interface is not mockable with mockgen. Use DefaultFactory or
// manual mocks instead.

import (
	"fmt"
	"sort"
	"sync"
)

// Strategy registry keys. The numeric order matches the device selector
// bytes: 0 selects the linear sweep, 1 the fixed-round doubling, 2 the
// leading-zero-skip doubling.
const (
	StrategyLinear      = "linear"
	StrategyDoubling    = "doubling"
	StrategyDoublingOpt = "doubling-opt"
)

// CalculatorFactory is an interface for creating Calculator instances.
// It allows flexible strategy instantiation and registration, enabling
// dependency injection and easier testing.
type CalculatorFactory interface {
	// Create creates a new Calculator instance by name.
	// Returns an error if the strategy is not registered.
	Create(name string) (Calculator, error)

	// Get returns an existing Calculator instance by name.
	// Returns an error if the strategy is not registered.
	Get(name string) (Calculator, error)

	// List returns a sorted list of registered strategy names.
	List() []string

	// Register adds a new strategy to the factory.
	Register(name string, creator func() coreCalculator) error

	// GetAll returns a map of all registered calculators.
	GetAll() map[string]Calculator
}

// DefaultFactory is the default implementation of CalculatorFactory.
// It maintains a thread-safe registry of strategy creators and caches
// Calculator instances for reuse.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreCalculator
	calculators map[string]Calculator
}

// NewDefaultFactory creates a new DefaultFactory with the three standard
// strategies pre-registered:
//
//   - "linear": LinearScan (O(k), dense history)
//   - "doubling": FastDoubling (O(log k), fixed 64 rounds)
//   - "doubling-opt": FastDoublingOpt (O(log k), leading-zero skip)
//
// Returns:
//   - *DefaultFactory: A new factory with the default strategies registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreCalculator),
		calculators: make(map[string]Calculator),
	}

	_ = f.Register(StrategyLinear, func() coreCalculator { return &LinearScan{} })
	_ = f.Register(StrategyDoubling, func() coreCalculator { return &FastDoubling{} })
	_ = f.Register(StrategyDoublingOpt, func() coreCalculator { return &FastDoublingOpt{} })

	return f
}

// Register adds a new strategy to the factory. The creator function is
// called lazily when the strategy is first requested. Registering a name
// that already exists replaces it and drops the cached instance.
func (f *DefaultFactory) Register(name string, creator func() coreCalculator) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.calculators, name)
	return nil
}

// Create creates a new Calculator instance by name. Unlike Get(), this
// always creates a fresh instance without caching.
func (f *DefaultFactory) Create(name string) (Calculator, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return NewCalculator(creator()), nil
}

// Get returns a Calculator instance by name. Instances are cached and reused
// for subsequent calls with the same name. This is the preferred method for
// most use cases.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	if calc, exists := f.calculators[name]; exists {
		f.mu.RUnlock()
		return calc, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring the write lock.
	if calc, exists := f.calculators[name]; exists {
		return calc, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}

	calc := NewCalculator(creator())
	f.calculators[name] = calc
	return calc, nil
}

// List returns an alphabetically sorted list of registered strategy names.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a map of all registered calculators, lazily initializing
// any that have not been created yet. The returned map is a copy.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.calculators[name]; !exists {
			f.calculators[name] = NewCalculator(creator())
		}
	}

	result := make(map[string]Calculator, len(f.calculators))
	for name, calc := range f.calculators {
		result[name] = calc
	}
	return result
}

// MustGet is like Get but panics if the strategy is not found. Useful in
// initialization code where a missing strategy is a programming error.
func (f *DefaultFactory) MustGet(name string) Calculator {
	calc, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("fibonacci: required strategy not found: %s", name))
	}
	return calc
}

// Has checks if a strategy with the given name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

// globalFactory is the default global factory instance.
var globalFactory = NewDefaultFactory()

// GlobalFactory returns the global factory instance, a convenience for
// applications that don't need multiple factories.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterCalculator registers a strategy in the global factory. Build-tagged
// extensions (the GMP reference strategy) hook themselves in through this.
func RegisterCalculator(name string, creator func() coreCalculator) error {
	return globalFactory.Register(name, creator)
}

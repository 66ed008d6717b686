package device

import (
	"sync"

	"github.com/jwang0306/fibdrv/internal/fibonacci"
)

// Selector bytes accepted by Session.Write, matching the legacy wire
// protocol of the original driver.
const (
	SelectLinear      byte = 0
	SelectDoubling    byte = 1
	SelectDoublingOpt byte = 2
)

// Selector is the synchronized cell holding the currently active strategy
// name. Every read observes exactly one strategy for its whole computation;
// selection follows last-write-wins with no further lifecycle.
//
// The cell is deliberately independent of session exclusivity: the engine
// stays safely usable under concurrent selection even when embedded without
// the device's single-session admission control.
type Selector struct {
	mu   sync.RWMutex
	name string
}

// NewSelector creates a Selector starting at the given strategy name.
func NewSelector(initial string) *Selector {
	return &Selector{name: initial}
}

// Current returns the active strategy name.
func (s *Selector) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// Set replaces the active strategy name unconditionally.
func (s *Selector) Set(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

// Select maps a legacy selector byte onto a strategy and activates it.
// Bytes outside the known set leave the current selection unchanged, as the
// original driver's switch fell through without a default.
//
// Returns:
//   - string: The strategy name active after the call.
//   - bool: true when the byte changed (or re-asserted) the selection.
func (s *Selector) Select(b byte) (string, bool) {
	var name string
	switch b {
	case SelectLinear:
		name = fibonacci.StrategyLinear
	case SelectDoubling:
		name = fibonacci.StrategyDoubling
	case SelectDoublingOpt:
		name = fibonacci.StrategyDoublingOpt
	default:
		return s.Current(), false
	}
	s.Set(name)
	return name, true
}

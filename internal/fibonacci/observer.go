// This file contains the Observer pattern implementation for progress
// reporting.
package fibonacci

import (
	"sync"
)

// ProgressObserver defines the interface for observing progress events.
// Implementations receive notifications when computation progress changes,
// enabling decoupled handling of progress updates for UI, logging, metrics,
// etc.
type ProgressObserver interface {
	// Update is called when progress changes.
	//
	// Parameters:
	//   - calcIndex: The calculator instance identifier.
	//   - progress: The normalized progress value (0.0 to 1.0).
	Update(calcIndex int, progress float64)
}

// ProgressSubject manages observer registration and notification for progress
// events. It is safe for concurrent use.
type ProgressSubject struct {
	observers []ProgressObserver
	mu        sync.RWMutex
}

// NewProgressSubject creates a new subject for managing progress observers.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{
		observers: make([]ProgressObserver, 0),
	}
}

// Register adds an observer to receive progress updates. Observers are
// notified in registration order. A nil observer is a no-op.
func (s *ProgressSubject) Register(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Unregister removes an observer from receiving updates. If the observer is
// not found, this call is a no-op.
func (s *ProgressSubject) Unregister(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.observers {
		if o == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify sends a progress update to all registered observers, synchronously
// and in registration order.
func (s *ProgressSubject) Notify(calcIndex int, progress float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, observer := range s.observers {
		observer.Update(calcIndex, progress)
	}
}

// ObserverCount returns the number of registered observers. Primarily useful
// for testing and diagnostics.
func (s *ProgressSubject) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// AsProgressReporter returns a ProgressReporter function that notifies all
// observers, bridging the functional reporter used by core strategies onto
// the observer mechanism.
//
// Parameters:
//   - calcIndex: The calculator instance identifier to include in notifications.
//
// Returns:
//   - ProgressReporter: A function that can be passed to core calculators.
func (s *ProgressSubject) AsProgressReporter(calcIndex int) ProgressReporter {
	return func(progress float64) {
		s.Notify(calcIndex, progress)
	}
}

// ChannelObserver forwards progress updates onto a channel, providing the
// bridge between observer-based strategies and channel-based consumers such
// as the orchestration layer. Sends are non-blocking: when the channel is
// full the update is dropped rather than stalling the computation.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer that forwards updates to ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Update forwards the progress event to the channel, dropping it if the
// channel is full.
func (o *ChannelObserver) Update(calcIndex int, progress float64) {
	if o.ch == nil {
		return
	}
	select {
	case o.ch <- ProgressUpdate{CalculatorIndex: calcIndex, Value: progress}:
	default:
	}
}

package layerkit

import (
	"sync"
	"sync/atomic"

	"github.com/grindlemire/layerkit/internal/debug"
)

// batchContext tracks batch state for deferring binding execution.
type batchContext struct {
	mu           sync.Mutex
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // pending binding callbacks keyed by binding ID
	pendingOrder []uint64          // order in which bindings were first triggered
}

var batch = batchContext{pending: make(map[uint64]func())}

// globalBindingID is a global counter for generating unique binding IDs.
// This ensures binding IDs are unique across all State instances.
var globalBindingID atomic.Uint64

// State wraps a value and notifies bindings when it changes.
// State is generic over any type T.
//
// Get is safe from any goroutine. Set is meant for the single owner of an
// editing session; readers on other goroutines see either the old or the new
// value.
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
}

// binding represents a registered callback that fires when state changes.
type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent
// future callback invocations for the associated binding.
type Unbind func()

// NewState creates a new state with the given initial value.
func NewState[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Get returns the current value. Thread-safe for reading from any goroutine.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all bindings.
// If called within a Batch(), binding execution is deferred until the
// batch completes.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	// Drop inactive bindings while holding the lock.
	activeBindings := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			activeBindings = append(activeBindings, b)
		}
	}
	s.bindings = activeBindings
	s.mu.Unlock()

	batch.mu.Lock()
	isBatching := batch.depth > 0
	if isBatching {
		// Later Set() calls to the same binding overwrite the pending value.
		for _, b := range activeBindings {
			bindingID := b.id
			bindingFn := b.fn
			capturedValue := v
			if _, exists := batch.pending[bindingID]; !exists {
				batch.pendingOrder = append(batch.pendingOrder, bindingID)
			}
			batch.pending[bindingID] = func() { bindingFn(capturedValue) }
		}
	}
	batch.mu.Unlock()

	if !isBatching {
		for _, b := range activeBindings {
			b.fn(v)
		}
	} else if len(activeBindings) > 0 {
		debug.Log("State.Set: deferred %d bindings (batching)", len(activeBindings))
	}
}

// Update applies a function to the current value and sets the result.
//
//	count.Update(func(v int) int { return v + 1 })
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers a function to be called when the value changes.
// Bindings are executed in registration order.
//
//	unbind := hide.Bind(func(v bool) {
//	    fmt.Println("layer hidden:", v)
//	})
//	unbind()
func (s *State[T]) Bind(fn func(T)) Unbind {
	id := globalBindingID.Add(1)

	s.mu.Lock()
	b := &binding[T]{id: id, fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Batch executes fn and defers all binding callbacks until fn returns.
//
// When the same binding is triggered multiple times during a batch,
// it only executes once with the final value. Bindings run in the order
// they were first triggered. Nested Batch calls only flush when the
// outermost one completes, and a panic in fn still resets the batch.
//
//	layerkit.Batch(func() {
//	    w.Position.Set(control.CenterPosition)
//	    w.ButtonSize.Set(control.DefaultButtonSize)
//	})
func Batch(fn func()) {
	batch.mu.Lock()
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		shouldExecute := batch.depth == 0 && len(batch.pending) > 0
		var pendingCallbacks []func()
		if shouldExecute {
			pendingCallbacks = make([]func(), 0, len(batch.pendingOrder))
			for _, id := range batch.pendingOrder {
				if callback, exists := batch.pending[id]; exists {
					pendingCallbacks = append(pendingCallbacks, callback)
				}
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		for _, callback := range pendingCallbacks {
			callback()
		}
	}()

	fn()
}

// resetBatch clears the batch context between tests.
func resetBatch() {
	batch.mu.Lock()
	batch.depth = 0
	batch.pending = make(map[uint64]func())
	batch.pendingOrder = nil
	batch.mu.Unlock()
}

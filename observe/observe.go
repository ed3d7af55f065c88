package observe

import "sync"

// Change describes a single value transition.
type Change[T any] struct {
	// Old is the value before the transition.
	Old T

	// New is the value after the transition.
	New T
}

// Listener is called when an observed value changes.
type Listener[T any] func(change Change[T])

// Subscription represents an active listener registration.
type Subscription struct {
	cancel func()
	once   sync.Once
}

// Cancel removes the listener from its emitter. It is safe to call Cancel
// multiple times; only the first call has an effect.
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.once.Do(s.cancel)
}

// entry pairs a listener with its registration ID.
type entry[T any] struct {
	id       uint64
	listener Listener[T]
}

// Emitter is a registry of change listeners for values of type T.
// The zero value is ready to use.
type Emitter[T any] struct {
	mu      sync.RWMutex
	entries []entry[T]
	nextID  uint64
}

// Subscribe registers a listener and returns its subscription.
// A nil listener is ignored and yields a no-op subscription.
func (e *Emitter[T]) Subscribe(listener Listener[T]) *Subscription {
	if listener == nil {
		return &Subscription{}
	}

	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.entries = append(e.entries, entry[T]{id: id, listener: listener})
	e.mu.Unlock()

	return &Subscription{cancel: func() { e.remove(id) }}
}

// HasListeners reports whether at least one listener is registered.
func (e *Emitter[T]) HasListeners() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.entries) > 0
}

// Len returns the number of registered listeners.
func (e *Emitter[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.entries)
}

// Notify delivers a change to every registered listener in subscription
// order. It returns after the last listener has run.
func (e *Emitter[T]) Notify(old, new T) {
	e.mu.RLock()
	listeners := make([]Listener[T], len(e.entries))
	for i, ent := range e.entries {
		listeners[i] = ent.listener
	}
	e.mu.RUnlock()

	// Call listeners outside the lock
	change := Change[T]{Old: old, New: new}
	for _, fn := range listeners {
		fn(change)
	}
}

// remove deletes the entry with the given ID.
func (e *Emitter[T]) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, ent := range e.entries {
		if ent.id == id {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return
		}
	}
}

package value

import (
	"fmt"

	"github.com/dshills/valuekit/observe"
)

// Enum is an observable slot constrained to a fixed set of allowed values.
// The allowed set is established at construction and never changes.
type Enum[T comparable] struct {
	v       T
	allowed []T
	emitter observe.Emitter[T]
}

// NewEnum creates an Enum holding initial, constrained to the allowed
// values. It returns ErrNotAllowed if allowed is empty or does not contain
// initial.
func NewEnum[T comparable](initial T, allowed ...T) (*Enum[T], error) {
	if len(allowed) == 0 {
		return nil, fmt.Errorf("%w: empty allowed set", ErrNotAllowed)
	}
	set := make([]T, len(allowed))
	copy(set, allowed)

	e := &Enum[T]{v: initial, allowed: set}
	if !e.Allows(initial) {
		return nil, fmt.Errorf("%w: %v", ErrNotAllowed, initial)
	}
	return e, nil
}

// MustNewEnum creates an Enum and panics on error. Useful for enums built
// from literals at init time.
func MustNewEnum[T comparable](initial T, allowed ...T) *Enum[T] {
	e, err := NewEnum(initial, allowed...)
	if err != nil {
		panic(err)
	}
	return e
}

// Get returns the stored value.
func (e *Enum[T]) Get() T {
	return e.v
}

// Set replaces the stored value. It returns ErrNotAllowed, without mutating
// or notifying, if v is outside the allowed set.
func (e *Enum[T]) Set(v T) error {
	if !e.Allows(v) {
		return fmt.Errorf("%w: %v", ErrNotAllowed, v)
	}
	old := e.v
	if v != old {
		e.v = v
		e.emitter.Notify(old, v)
	}
	return nil
}

// MustSet replaces the stored value and returns the wrapper for chaining.
// It panics if v is outside the allowed set.
func (e *Enum[T]) MustSet(v T) *Enum[T] {
	if err := e.Set(v); err != nil {
		panic(err)
	}
	return e
}

// Is reports whether the stored value equals v.
func (e *Enum[T]) Is(v T) bool {
	return e.v == v
}

// Allows reports whether v is in the allowed set.
func (e *Enum[T]) Allows(v T) bool {
	for _, a := range e.allowed {
		if a == v {
			return true
		}
	}
	return false
}

// Values returns a copy of the allowed set in construction order.
func (e *Enum[T]) Values() []T {
	out := make([]T, len(e.allowed))
	copy(out, e.allowed)
	return out
}

// Ordinal returns the position of the stored value in the allowed set.
func (e *Enum[T]) Ordinal() int {
	for i, a := range e.allowed {
		if a == e.v {
			return i
		}
	}
	return -1
}

// Compare orders the stored value against other by allowed-set position.
// Values outside the set order before all allowed values.
func (e *Enum[T]) Compare(other T) int {
	mine := e.Ordinal()
	theirs := -1
	for i, a := range e.allowed {
		if a == other {
			theirs = i
			break
		}
	}
	switch {
	case mine < theirs:
		return -1
	case mine > theirs:
		return 1
	default:
		return 0
	}
}

// OnChange registers a listener for value changes.
func (e *Enum[T]) OnChange(fn observe.Listener[T]) *observe.Subscription {
	return e.emitter.Subscribe(fn)
}

// HasListeners reports whether any change listener is attached.
func (e *Enum[T]) HasListeners() bool {
	return e.emitter.HasListeners()
}

// String returns the representation of the stored value.
func (e *Enum[T]) String() string {
	return fmt.Sprintf("%v", e.v)
}

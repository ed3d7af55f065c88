package value

import (
	"strconv"

	"github.com/dshills/valuekit/observe"
)

// Bool is an observable boolean slot.
type Bool struct {
	v       bool
	emitter observe.Emitter[bool]
}

// NewBool creates a Bool holding v.
func NewBool(v bool) *Bool {
	return &Bool{v: v}
}

// Get returns the stored value.
func (b *Bool) Get() bool {
	return b.v
}

// Set replaces the stored value and returns the wrapper for chaining.
// Listeners are notified if the value changed.
func (b *Bool) Set(v bool) *Bool {
	old := b.v
	if v != old {
		b.v = v
		b.emitter.Notify(old, v)
	}
	return b
}

// Flip inverts the stored value and returns the wrapper for chaining.
func (b *Bool) Flip() *Bool {
	return b.Set(!b.v)
}

// IsTrue reports whether the stored value is true.
func (b *Bool) IsTrue() bool {
	return b.v
}

// IsFalse reports whether the stored value is false.
func (b *Bool) IsFalse() bool {
	return !b.v
}

// Compare returns -1, 0, or 1 ordering the stored value against other,
// with false ordered before true.
func (b *Bool) Compare(other bool) int {
	switch {
	case b.v == other:
		return 0
	case !b.v:
		return -1
	default:
		return 1
	}
}

// OnChange registers a listener for value changes.
func (b *Bool) OnChange(fn observe.Listener[bool]) *observe.Subscription {
	return b.emitter.Subscribe(fn)
}

// HasListeners reports whether any change listener is attached.
func (b *Bool) HasListeners() bool {
	return b.emitter.HasListeners()
}

// String returns "true" or "false".
func (b *Bool) String() string {
	return strconv.FormatBool(b.v)
}

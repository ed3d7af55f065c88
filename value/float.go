package value

import (
	"fmt"

	"github.com/dshills/valuekit/observe"
)

// Float is an observable floating-point slot. Arithmetic follows IEEE-754:
// operations never fail, overflow yields an infinity and invalid operations
// yield NaN.
type Float[T floating] struct {
	v       T
	emitter observe.Emitter[T]
}

// Concrete float wrappers.
type (
	// Float32 wraps a float32.
	Float32 = Float[float32]

	// Float64 wraps a float64.
	Float64 = Float[float64]
)

// NewFloat32 creates a Float32 holding v.
func NewFloat32(v float32) *Float32 {
	return &Float32{v: v}
}

// NewFloat64 creates a Float64 holding v.
func NewFloat64(v float64) *Float64 {
	return &Float64{v: v}
}

// Get returns the stored value.
func (f *Float[T]) Get() T {
	return f.v
}

// Set replaces the stored value and returns the wrapper for chaining.
// Listeners are notified if the value changed.
func (f *Float[T]) Set(v T) *Float[T] {
	f.commit(v)
	return f
}

// OnChange registers a listener for value changes.
func (f *Float[T]) OnChange(fn observe.Listener[T]) *observe.Subscription {
	return f.emitter.Subscribe(fn)
}

// HasListeners reports whether any change listener is attached.
func (f *Float[T]) HasListeners() bool {
	return f.emitter.HasListeners()
}

// Compare returns -1, 0, or 1 ordering the stored value against other.
func (f *Float[T]) Compare(other T) int {
	switch {
	case f.v < other:
		return -1
	case f.v > other:
		return 1
	default:
		return 0
	}
}

// String returns the representation of the stored value.
func (f *Float[T]) String() string {
	return fmt.Sprintf("%v", f.v)
}

// commit stores v and notifies listeners if the value changed.
// A NaN result always notifies since NaN compares unequal to everything.
func (f *Float[T]) commit(v T) {
	old := f.v
	if v != old {
		f.v = v
		f.emitter.Notify(old, v)
	}
}

// Add adds delta to the stored value and returns the wrapper for chaining.
func (f *Float[T]) Add(delta T) *Float[T] {
	f.commit(f.v + delta)
	return f
}

// AddGet adds delta and returns the new value.
func (f *Float[T]) AddGet(delta T) T {
	f.commit(f.v + delta)
	return f.v
}

// GetAdd adds delta and returns the value held before the addition.
func (f *Float[T]) GetAdd(delta T) T {
	old := f.v
	f.commit(f.v + delta)
	return old
}

// Sub subtracts delta from the stored value and returns the wrapper for
// chaining.
func (f *Float[T]) Sub(delta T) *Float[T] {
	f.commit(f.v - delta)
	return f
}

// SubGet subtracts delta and returns the new value.
func (f *Float[T]) SubGet(delta T) T {
	f.commit(f.v - delta)
	return f.v
}

// GetSub subtracts delta and returns the value held before the subtraction.
func (f *Float[T]) GetSub(delta T) T {
	old := f.v
	f.commit(f.v - delta)
	return old
}

// Mul multiplies the stored value by factor and returns the wrapper for
// chaining.
func (f *Float[T]) Mul(factor T) *Float[T] {
	f.commit(f.v * factor)
	return f
}

// MulGet multiplies by factor and returns the new value.
func (f *Float[T]) MulGet(factor T) T {
	f.commit(f.v * factor)
	return f.v
}

// GetMul multiplies by factor and returns the value held before the
// multiplication.
func (f *Float[T]) GetMul(factor T) T {
	old := f.v
	f.commit(f.v * factor)
	return old
}

// Div divides the stored value by divisor and returns the wrapper for
// chaining. Division by zero yields an infinity or NaN per IEEE-754.
func (f *Float[T]) Div(divisor T) *Float[T] {
	f.commit(f.v / divisor)
	return f
}

// DivGet divides by divisor and returns the new value.
func (f *Float[T]) DivGet(divisor T) T {
	f.commit(f.v / divisor)
	return f.v
}

// GetDiv divides by divisor and returns the value held before the division.
func (f *Float[T]) GetDiv(divisor T) T {
	old := f.v
	f.commit(f.v / divisor)
	return old
}

// Inc increments the stored value by one and returns the wrapper for
// chaining.
func (f *Float[T]) Inc() *Float[T] {
	return f.Add(1)
}

// Dec decrements the stored value by one and returns the wrapper for
// chaining.
func (f *Float[T]) Dec() *Float[T] {
	return f.Sub(1)
}

// IsPositive reports whether the stored value is greater than zero.
func (f *Float[T]) IsPositive() bool {
	return f.v > 0
}

// IsNegative reports whether the stored value is less than zero.
func (f *Float[T]) IsNegative() bool {
	return f.v < 0
}

// IsZero reports whether the stored value is zero.
func (f *Float[T]) IsZero() bool {
	return f.v == 0
}

// IsEqualTo reports whether the stored value equals other.
// NaN is never equal to anything, including itself.
func (f *Float[T]) IsEqualTo(other T) bool {
	return f.v == other
}

// IsLessThan reports whether the stored value is less than other.
func (f *Float[T]) IsLessThan(other T) bool {
	return f.v < other
}

// IsGreaterThan reports whether the stored value is greater than other.
func (f *Float[T]) IsGreaterThan(other T) bool {
	return f.v > other
}

// IsAtLeast reports whether the stored value is greater than or equal to
// other.
func (f *Float[T]) IsAtLeast(other T) bool {
	return f.v >= other
}

// IsAtMost reports whether the stored value is less than or equal to other.
func (f *Float[T]) IsAtMost(other T) bool {
	return f.v <= other
}

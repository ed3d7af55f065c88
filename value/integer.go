package value

import (
	"strconv"

	"github.com/dshills/valuekit/observe"
)

// Integer is an observable integer slot with exact arithmetic: operations
// that would overflow return ErrOverflow and leave the slot untouched.
type Integer[T signedInteger] struct {
	v       T
	emitter observe.Emitter[T]
}

// Concrete integer wrappers.
type (
	// Int wraps a machine int.
	Int = Integer[int]

	// Int64 wraps an int64.
	Int64 = Integer[int64]
)

// NewInt creates an Int holding v.
func NewInt(v int) *Int {
	return &Int{v: v}
}

// NewInt64 creates an Int64 holding v.
func NewInt64(v int64) *Int64 {
	return &Int64{v: v}
}

// Get returns the stored value.
func (n *Integer[T]) Get() T {
	return n.v
}

// Set replaces the stored value and returns the wrapper for chaining.
// Listeners are notified if the value changed.
func (n *Integer[T]) Set(v T) *Integer[T] {
	old := n.v
	if v != old {
		n.v = v
		n.emitter.Notify(old, v)
	}
	return n
}

// OnChange registers a listener for value changes.
func (n *Integer[T]) OnChange(fn observe.Listener[T]) *observe.Subscription {
	return n.emitter.Subscribe(fn)
}

// HasListeners reports whether any change listener is attached.
func (n *Integer[T]) HasListeners() bool {
	return n.emitter.HasListeners()
}

// Compare returns -1, 0, or 1 ordering the stored value against other.
func (n *Integer[T]) Compare(other T) int {
	switch {
	case n.v < other:
		return -1
	case n.v > other:
		return 1
	default:
		return 0
	}
}

// String returns the decimal representation of the stored value.
func (n *Integer[T]) String() string {
	return strconv.FormatInt(int64(n.v), 10)
}

// apply runs f on the stored value, commits and notifies on success, and
// leaves the slot untouched on error.
func (n *Integer[T]) apply(f func(T) (T, error)) (old, updated T, err error) {
	old = n.v
	updated, err = f(old)
	if err != nil {
		return old, old, err
	}
	if updated != old {
		n.v = updated
		n.emitter.Notify(old, updated)
	}
	return old, updated, nil
}

// Add adds delta to the stored value.
func (n *Integer[T]) Add(delta T) error {
	_, _, err := n.apply(func(v T) (T, error) { return addChecked(v, delta) })
	return err
}

// AddGet adds delta and returns the new value.
func (n *Integer[T]) AddGet(delta T) (T, error) {
	_, updated, err := n.apply(func(v T) (T, error) { return addChecked(v, delta) })
	return updated, err
}

// GetAdd adds delta and returns the value held before the addition.
func (n *Integer[T]) GetAdd(delta T) (T, error) {
	old, _, err := n.apply(func(v T) (T, error) { return addChecked(v, delta) })
	return old, err
}

// MustAdd adds delta and returns the wrapper for chaining.
// It panics on overflow.
func (n *Integer[T]) MustAdd(delta T) *Integer[T] {
	if err := n.Add(delta); err != nil {
		panic(err)
	}
	return n
}

// Sub subtracts delta from the stored value.
func (n *Integer[T]) Sub(delta T) error {
	_, _, err := n.apply(func(v T) (T, error) { return subChecked(v, delta) })
	return err
}

// SubGet subtracts delta and returns the new value.
func (n *Integer[T]) SubGet(delta T) (T, error) {
	_, updated, err := n.apply(func(v T) (T, error) { return subChecked(v, delta) })
	return updated, err
}

// GetSub subtracts delta and returns the value held before the subtraction.
func (n *Integer[T]) GetSub(delta T) (T, error) {
	old, _, err := n.apply(func(v T) (T, error) { return subChecked(v, delta) })
	return old, err
}

// MustSub subtracts delta and returns the wrapper for chaining.
// It panics on overflow.
func (n *Integer[T]) MustSub(delta T) *Integer[T] {
	if err := n.Sub(delta); err != nil {
		panic(err)
	}
	return n
}

// Mul multiplies the stored value by factor.
func (n *Integer[T]) Mul(factor T) error {
	_, _, err := n.apply(func(v T) (T, error) { return mulChecked(v, factor) })
	return err
}

// MulGet multiplies by factor and returns the new value.
func (n *Integer[T]) MulGet(factor T) (T, error) {
	_, updated, err := n.apply(func(v T) (T, error) { return mulChecked(v, factor) })
	return updated, err
}

// GetMul multiplies by factor and returns the value held before the
// multiplication.
func (n *Integer[T]) GetMul(factor T) (T, error) {
	old, _, err := n.apply(func(v T) (T, error) { return mulChecked(v, factor) })
	return old, err
}

// MustMul multiplies by factor and returns the wrapper for chaining.
// It panics on overflow.
func (n *Integer[T]) MustMul(factor T) *Integer[T] {
	if err := n.Mul(factor); err != nil {
		panic(err)
	}
	return n
}

// Div divides the stored value by divisor.
func (n *Integer[T]) Div(divisor T) error {
	_, _, err := n.apply(func(v T) (T, error) { return divChecked(v, divisor) })
	return err
}

// DivGet divides by divisor and returns the new value.
func (n *Integer[T]) DivGet(divisor T) (T, error) {
	_, updated, err := n.apply(func(v T) (T, error) { return divChecked(v, divisor) })
	return updated, err
}

// GetDiv divides by divisor and returns the value held before the division.
func (n *Integer[T]) GetDiv(divisor T) (T, error) {
	old, _, err := n.apply(func(v T) (T, error) { return divChecked(v, divisor) })
	return old, err
}

// MustDiv divides by divisor and returns the wrapper for chaining.
// It panics on a zero divisor or overflow.
func (n *Integer[T]) MustDiv(divisor T) *Integer[T] {
	if err := n.Div(divisor); err != nil {
		panic(err)
	}
	return n
}

// Inc increments the stored value by one.
func (n *Integer[T]) Inc() error {
	return n.Add(1)
}

// IncGet increments by one and returns the new value.
func (n *Integer[T]) IncGet() (T, error) {
	return n.AddGet(1)
}

// GetInc increments by one and returns the value held before the increment.
func (n *Integer[T]) GetInc() (T, error) {
	return n.GetAdd(1)
}

// MustInc increments by one and returns the wrapper for chaining.
// It panics on overflow.
func (n *Integer[T]) MustInc() *Integer[T] {
	return n.MustAdd(1)
}

// Dec decrements the stored value by one.
func (n *Integer[T]) Dec() error {
	return n.Sub(1)
}

// DecGet decrements by one and returns the new value.
func (n *Integer[T]) DecGet() (T, error) {
	return n.SubGet(1)
}

// GetDec decrements by one and returns the value held before the decrement.
func (n *Integer[T]) GetDec() (T, error) {
	return n.GetSub(1)
}

// MustDec decrements by one and returns the wrapper for chaining.
// It panics on overflow.
func (n *Integer[T]) MustDec() *Integer[T] {
	return n.MustSub(1)
}

// IsPositive reports whether the stored value is greater than zero.
func (n *Integer[T]) IsPositive() bool {
	return n.v > 0
}

// IsNegative reports whether the stored value is less than zero.
func (n *Integer[T]) IsNegative() bool {
	return n.v < 0
}

// IsZero reports whether the stored value is zero.
func (n *Integer[T]) IsZero() bool {
	return n.v == 0
}

// IsEqualTo reports whether the stored value equals other.
func (n *Integer[T]) IsEqualTo(other T) bool {
	return n.v == other
}

// IsLessThan reports whether the stored value is less than other.
func (n *Integer[T]) IsLessThan(other T) bool {
	return n.v < other
}

// IsGreaterThan reports whether the stored value is greater than other.
func (n *Integer[T]) IsGreaterThan(other T) bool {
	return n.v > other
}

// IsAtLeast reports whether the stored value is greater than or equal to
// other.
func (n *Integer[T]) IsAtLeast(other T) bool {
	return n.v >= other
}

// IsAtMost reports whether the stored value is less than or equal to other.
func (n *Integer[T]) IsAtMost(other T) bool {
	return n.v <= other
}

// Package value provides observable wrapper types for primitive-like values.
//
// Each wrapper holds exactly one value slot behind a uniform get/set/compare
// contract. Mutable wrappers are observable: a Set or arithmetic operation
// that changes the stored value synchronously notifies every registered
// listener with the old and new value before returning. Sets that leave the
// value unchanged are suppressed and do not notify.
//
// # Wrapper types
//
//   - Bool — boolean slot with Flip
//   - Int, Int64 — integer slots with exact (overflow-checked) arithmetic
//   - Float32, Float64 — floating slots with IEEE-754 arithmetic
//   - Enum — slot constrained to a fixed set of allowed values
//   - Str — immutable string value object; every transformation returns a
//     new Str
//   - Immutable — minimal read-only wrapper for frozen snapshots
//
// # Arithmetic
//
// Integer wrappers use exact arithmetic: operations that would overflow
// return ErrOverflow and leave the value untouched. Floating wrappers follow
// IEEE-754 and never fail; overflow yields an infinity. Each operator comes
// in four forms, shown here for addition:
//
//	err := n.Add(3)          // mutate
//	v, err := n.AddGet(3)    // mutate, return the new value
//	v, err := n.GetAdd(3)    // mutate, return the previous value
//	n.MustAdd(3).MustAdd(2)  // mutate, return the wrapper; panics on error
//
// # Observation
//
// Listeners attach with OnChange and detach through the returned
// subscription. Delivery is synchronous on the mutating goroutine:
//
//	n := value.NewInt(5)
//	sub := n.OnChange(func(c observe.Change[int]) {
//	    fmt.Printf("%d -> %d\n", c.Old, c.New)
//	})
//	n.Set(8) // prints "5 -> 8"
//	sub.Cancel()
//
// A failed operation (overflow, divide by zero, disallowed enum value) never
// mutates the slot and never notifies.
//
// # Thread safety
//
// The listener registry is safe for concurrent use, but concurrent mutation
// of a shared wrapper is not: Set and the arithmetic operations perform an
// unsynchronized read-modify-write of the slot. Guard shared wrappers
// externally or confine them to one goroutine.
package value

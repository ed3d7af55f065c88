package value

// Immutable is a read-only wrapper around a single value. The wrapped value
// never changes after construction; transformations produce new wrappers.
type Immutable[T any] struct {
	v T
}

// Freeze creates an Immutable holding v.
func Freeze[T any](v T) Immutable[T] {
	return Immutable[T]{v: v}
}

// Get returns the wrapped value.
func (i Immutable[T]) Get() T {
	return i.v
}

// Map returns a new Immutable holding fn applied to the wrapped value.
// The receiver is unchanged.
func (i Immutable[T]) Map(fn func(T) T) Immutable[T] {
	if fn == nil {
		return i
	}
	return Immutable[T]{v: fn(i.v)}
}

// EqualFunc reports whether two immutable wrappers hold equal values under
// eq.
func EqualFunc[T any](a, b Immutable[T], eq func(x, y T) bool) bool {
	if eq == nil {
		return false
	}
	return eq(a.v, b.v)
}

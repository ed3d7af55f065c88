package value

import "errors"

// Sentinel errors for the value wrappers.
var (
	// ErrOverflow is returned when an exact-arithmetic operation would
	// overflow the wrapper's integer type.
	ErrOverflow = errors.New("integer overflow")

	// ErrDivideByZero is returned when an integer division has a zero
	// divisor.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrNotAllowed is returned when an enum wrapper is given a value
	// outside its allowed set.
	ErrNotAllowed = errors.New("value not in allowed set")

	// ErrNotNumeric is returned when a Str that does not hold a numeric
	// string is converted to a number.
	ErrNotNumeric = errors.New("string is not numeric")
)

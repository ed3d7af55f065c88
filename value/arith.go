package value

// signedInteger constrains the integer wrapper element types.
type signedInteger interface {
	~int | ~int64
}

// floating constrains the float wrapper element types.
type floating interface {
	~float32 | ~float64
}

// addChecked returns a+b or ErrOverflow.
func addChecked[T signedInteger](a, b T) (T, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}
	return sum, nil
}

// subChecked returns a-b or ErrOverflow.
func subChecked[T signedInteger](a, b T) (T, error) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, ErrOverflow
	}
	return diff, nil
}

// mulChecked returns a*b or ErrOverflow.
func mulChecked[T signedInteger](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// x == -x only holds for the minimum value of a two's-complement type
	// (zero is excluded above), so these are the min*-1 wraparound cases
	// that the quotient check below cannot catch.
	if (a == -1 && b == -b) || (b == -1 && a == -a) {
		return 0, ErrOverflow
	}
	p := a * b
	if p/b != a {
		return 0, ErrOverflow
	}
	return p, nil
}

// divChecked returns a/b, ErrDivideByZero, or ErrOverflow for min/-1.
func divChecked[T signedInteger](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	if b == -1 && a == -a && a != 0 {
		return 0, ErrOverflow
	}
	return a / b, nil
}

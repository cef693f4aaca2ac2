package fixed

// DefaultTolerance is the conventional approximate-equality tolerance
// (0.001) for callers of ApproxEq; ApproxEq itself always takes its
// tolerance as an argument.
var DefaultTolerance = FromFloat64(0.001)

// Min returns the smaller of the two values, ordered as plain signed
// integers on the raw bit pattern (the natural ordering for this
// representation).
func Min(a, b Real) Real {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of the two values.
func Max(a, b Real) Real {
	if a > b {
		return a
	}
	return b
}

// ApproxEq reports whether a and b differ by no more than tol.
func (r Real) ApproxEq(o Real, tol Real) bool {
	return r.Sub(o).Abs() <= tol
}

// EqFloat64 compares against a float64 by first converting it to Real.
func (r Real) EqFloat64(f float64) bool {
	return r == FromFloat64(f)
}

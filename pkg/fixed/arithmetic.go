package fixed

// Add wraps on overflow, matching native two's-complement addition.
func (r Real) Add(o Real) Real {
	return Real(int32(r) + int32(o))
}

// Sub wraps on overflow.
func (r Real) Sub(o Real) Real {
	return Real(int32(r) - int32(o))
}

// Mul widens both operands to 64 bits, multiplies, shifts right by the
// fractional width and narrows back to 32 bits. The intermediate multiply
// wraps silently on overflow just like the 32 bit operations; only the
// final narrowing can lose bits and it does so by plain truncation.
func (r Real) Mul(o Real) Real {
	wide := int64(int32(r)) * int64(int32(o))
	return Real(int32(wide >> fracBits))
}

// Div widens the left operand (pre-shifted left by the fractional width)
// and divides by the right operand widened to 64 bits. Division by zero,
// or the INT_MIN/-1 trap case, yields Zero instead of panicking: callers
// must tolerate a zero result, per the kernel's numeric edge case policy.
func (r Real) Div(o Real) Real {
	if o == 0 {
		return Zero
	}
	wide := int64(int32(r)) << fracBits
	divisor := int64(int32(o))
	if wide == int64(MinValue)<<fracBits && divisor == -1 {
		return Zero
	}
	return Real(int32(wide / divisor))
}

// Neg is sign negation, matching native wraparound (Min negates to itself).
func (r Real) Neg() Real {
	return Real(-int32(r))
}

// Floor masks off the fractional bits.
func (r Real) Floor() Real {
	return Real(int32(r) &^ (Scale - 1))
}

// Ceil returns r unchanged if it has no fractional part, otherwise floors
// and adds one whole unit.
func (r Real) Ceil() Real {
	if r.Fract() == 0 {
		return r
	}
	return r.Floor() + One
}

// Trunc rounds toward zero: floor, then for negative values with a
// fractional remainder step back up by one whole unit.
func (r Real) Trunc() Real {
	f := r.Floor()
	if r < 0 && f != r {
		return f + One
	}
	return f
}

// Round adds sign*0.5 then truncates toward zero.
func (r Real) Round() Real {
	if r >= 0 {
		return (r + Half).Trunc()
	}
	return (r - Half).Trunc()
}

// Abs returns the absolute value. Min's absolute value wraps back to Min,
// matching native two's-complement behavior (never hit in practice given
// the simulator's value ranges).
func (r Real) Abs() Real {
	if r < 0 {
		return r.Neg()
	}
	return r
}

// Signum never returns zero: zero is treated as positive one, by the
// convention `1 | (raw >> 31)` applied to the sign bit. Preserving this
// avoids a branch at every attack-rounding call site that relies on it.
// The result is returned as a Real equal to One or NegOne so it composes
// directly with other Real values (e.g. `r.Signum().Mul(Half)`).
func (r Real) Signum() Real {
	bit := int32(r) >> 31
	if 1|bit < 0 {
		return NegOne
	}
	return One
}

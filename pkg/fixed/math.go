package fixed

// Trigonometric/rounding constants. These are computed once at package
// init from a pure integer/software pipeline equivalent (FromFloat64 only
// ever does `f * 4096` truncation, with no FPU-rounding-mode-dependent
// transcendental function involved), so the resulting raw bit patterns are
// identical on every build host regardless of libm implementation -
// matching the kernel's "software float constant folding" requirement.
var (
	Pi      = FromFloat64(3.14159265358979323846)
	Tau     = Pi.Mul(Two)
	FracPi2 = Pi.Div(Two)
	Frac1Pi = One.Div(Pi)
)

// ToRadians converts a Real holding a degree value into radians as
// r*Pi/180, multiplying before dividing and staying in fixed-point the
// whole way. A precomputed Pi/180 Real carries too few bits (0.0173
// instead of 0.01745) to land 360 degrees on Tau.
func (r Real) ToRadians() Real {
	return r.Mul(Pi).Div(FromInt(180))
}

// ToDegrees converts a Real holding a radian value into degrees as
// r*180/Pi, multiplying before dividing.
func (r Real) ToDegrees() Real {
	return r.Mul(FromInt(180)).Div(Pi)
}

// Squared returns r*r.
func (r Real) Squared() Real {
	return r.Mul(r)
}

// Powi raises r to a small non-negative integer power by repeated
// multiplication.
func (r Real) Powi(n int) Real {
	result := One
	for i := 0; i < n; i++ {
		result = result.Mul(r)
	}
	return result
}

// Sqrt computes the square root using a bit-by-bit restoring algorithm
// operating on the raw bit pattern, producing a result rounded toward
// zero to the kernel's 1/4096 resolution. Negative input is a programming
// error: callers must never invoke Sqrt on a negative Real, and this
// panics rather than returning a nonsense result, per the kernel's
// fail-loudly policy for programming errors.
func (r Real) Sqrt() Real {
	if r < 0 {
		panic("fixed: Sqrt of negative value")
	}
	if r == 0 {
		return Zero
	}

	// sqrt(v * 2^-12) * 2^12 == isqrt(v * 2^12); widen to 64 bits since
	// the shifted value can exceed the 32 bit range.
	radicand := uint64(int64(r)) << fracBits
	return Real(int32(isqrt64(radicand)))
}

// isqrt64 is the classic bit-by-bit restoring integer square root: find
// the largest y such that y*y <= n, examining two bits of n at a time
// from the top down.
func isqrt64(n uint64) uint64 {
	var result uint64
	// highest even power of 4 bit not exceeding n
	var bit uint64 = 1 << 62
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= result+bit {
			n -= result + bit
			result = result>>1 + bit
		} else {
			result >>= 1
		}
		bit >>= 2
	}
	return result
}

// Polynomial coefficients for the odd-only atan approximation used by
// Atan2, `a1 + t^2*(a3 + t^2*(a5 + t^2*(a7 + t^2*(a9 + t^2*a11))))`.
var (
	atanA1  = FromFloat64(0.99997726)
	atanA3  = FromFloat64(-0.33262347)
	atanA5  = FromFloat64(0.19354346)
	atanA7  = FromFloat64(-0.11643287)
	atanA9  = FromFloat64(0.05265332)
	atanA11 = FromFloat64(-0.01172120)
)

func atanApprox(t Real) Real {
	tt := t.Squared()
	p := atanA11
	p = atanA9.Add(tt.Mul(p))
	p = atanA7.Add(tt.Mul(p))
	p = atanA5.Add(tt.Mul(p))
	p = atanA3.Add(tt.Mul(p))
	p = atanA1.Add(tt.Mul(p))
	return t.Mul(p)
}

// Atan2 computes the angle, in radians, between the positive x-axis and
// the point (x, y), using the odd-only polynomial approximation above
// plus quadrant correction.
func Atan2(y, x Real) Real {
	var result Real
	if y.Abs() > x.Abs() {
		t := x.Div(y)
		result = t.Signum().Mul(FracPi2).Sub(atanApprox(t))
	} else {
		t := y.Div(x)
		result = atanApprox(t)
	}

	if x < 0 && y >= 0 {
		result = result.Add(Pi)
	} else if x < 0 && y < 0 {
		result = result.Sub(Pi)
	}
	return result
}

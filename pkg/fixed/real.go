// Package fixed provides a deterministic 20.12 signed fixed-point scalar
// type, `Real`, used throughout the combat simulator so that outcomes are
// reproducible byte-for-byte across build hosts and architectures. No
// operation in this package ever touches the platform FPU at simulation
// time; float64/float32 only ever appear at the edges (parsing literals,
// formatting for display).
package fixed

import "fmt"

// Real :
// A 32 bit signed fixed-point number with a scale of 2^12 (4096). The
// integer part occupies the high 20 bits and the fractional part the
// low 12, giving a resolution of 1/4096 and a representable range of
// roughly ±524287.
//
// The `raw` value is never adjusted implicitly: all arithmetic on a
// `Real` goes through the operations defined in this package so that
// overflow and rounding behavior stays identical regardless of caller.
type Real int32

// Scale shift and faction used to move between integer and fixed-point
// representations.
const (
	fracBits = 12
	Scale    = 1 << fracBits
)

// Named constants of the kernel. All of them are built from integer/raw
// literals rather than a float division so they fold to the same bit
// pattern on every host.
const (
	Zero   Real = 0
	One    Real = 1 << fracBits
	Two    Real = 2 << fracBits
	NegOne Real = -(1 << fracBits)
	Half   Real = 1 << (fracBits - 1)
	// Epsilon is the smallest representable positive step.
	Epsilon Real = 1
	MaxValue Real = Real(int32(1<<31 - 1))
	MinValue Real = Real(int32(-1 << 31))
)

// FromRaw builds a Real directly from its underlying bit pattern. Used by
// code that has already produced the scaled representation (e.g. decoding
// persisted state).
func FromRaw(raw int32) Real {
	return Real(raw)
}

// Raw returns the underlying scaled bit pattern.
func (r Real) Raw() int32 {
	return int32(r)
}

// FromInt converts a plain integer to fixed-point: `n << 12`. Wraps on
// overflow like every other operation in this package, it never panics.
func FromInt(n int) Real {
	return Real(int32(n) << fracBits)
}

// Int returns the plain integer part via an arithmetic right shift of
// the raw bits.
func (r Real) Int() int {
	return int(int32(r) >> fracBits)
}

// Int32 is Int narrowed to int32, for archetype tables that store counts.
func (r Real) Int32() int32 {
	return int32(r) >> fracBits
}

// FromFloat64 rounds toward zero: `f * 4096`. Prefer FromInt/compile-time
// constants in the simulation hot path; this exists for parsing
// human-authored data (e.g. CLI arguments, JSON archetype overrides).
func FromFloat64(f float64) Real {
	return Real(int32(f * Scale))
}

// Float64 returns the closest float64 to this value. Used only for
// display/logging/test assertions, never inside the tick loop.
func (r Real) Float64() float64 {
	return float64(int32(r)) / Scale
}

// Float32 narrows Float64.
func (r Real) Float32() float32 {
	return float32(r.Float64())
}

// Fract isolates the fractional bits, discarding the integer part's sign.
func (r Real) Fract() Real {
	return r - Real(r.Floor())
}

func (r Real) String() string {
	return fmt.Sprintf("%g", r.Float64())
}

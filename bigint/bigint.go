package bigint

import (
	"fmt"
	"math"
)

// BigInt is an arbitrary-precision signed integer. The zero value is
// not valid; use Zero(), FromU64, FromI64, FromLimbs or Parse.
type BigInt struct {
	// sign is true for zero and positive values, false for negative.
	sign bool
	// limbs holds the magnitude, least-significant limb first. Always
	// has at least one element; has no trailing (most significant)
	// zero limb unless it is the single-element zero value.
	limbs []uint64
}

// checkInvariants panics if x violates the normalisation invariant.
// Called at the start of every exported function that receives a
// *BigInt from a caller, since a violation can only mean a caller
// built one by hand instead of going through this package's
// constructors.
func checkInvariants(x *BigInt) {
	if x == nil {
		panic("bigint: nil BigInt")
	}
	if len(x.limbs) == 0 {
		panic("bigint: BigInt with no limbs")
	}
	if len(x.limbs) > 1 && x.limbs[len(x.limbs)-1] == 0 {
		panic("bigint: BigInt with leading zero limb")
	}
	if len(x.limbs) == 1 && x.limbs[0] == 0 && !x.sign {
		panic("bigint: negative zero")
	}
}

// Zero returns the canonical representation of 0.
func Zero() *BigInt {
	return &BigInt{sign: true, limbs: []uint64{0}}
}

// FromU64 returns n as a non-negative BigInt.
func FromU64(n uint64) *BigInt {
	return &BigInt{sign: true, limbs: []uint64{n}}
}

// FromI64 returns n as a BigInt, handling math.MinInt64 without
// signed overflow: its magnitude (2^63) does not fit back into an
// int64, so it is computed via the unsigned representation instead of
// negating n directly.
func FromI64(n int64) *BigInt {
	if n >= 0 {
		return &BigInt{sign: true, limbs: []uint64{uint64(n)}}
	}
	if n == math.MinInt64 {
		return &BigInt{sign: false, limbs: []uint64{1 << 63}}
	}
	return &BigInt{sign: false, limbs: []uint64{uint64(-n)}}
}

// FromLimbs builds a non-negative BigInt from limbs given
// most-significant-first (the natural order for a literal like
// FromLimbs(0x1, 0x0) meaning 2^64), normalising away any leading
// zeros in the process.
func FromLimbs(msbFirst ...uint64) *BigInt {
	if len(msbFirst) == 0 {
		return Zero()
	}
	lsFirst := make([]uint64, len(msbFirst))
	for i, v := range msbFirst {
		lsFirst[len(msbFirst)-1-i] = v
	}
	return &BigInt{sign: true, limbs: normalize(lsFirst)}
}

// fromLimbsLS builds a BigInt with the given sign directly from an
// already-least-significant-first limb slice, taking ownership of it
// (the caller must not retain or mutate the slice afterwards). A zero
// magnitude always gets the positive sign.
func fromLimbsLS(sign bool, limbs []uint64) *BigInt {
	limbs = normalize(limbs)
	if len(limbs) == 1 && limbs[0] == 0 {
		sign = true
	}
	return &BigInt{sign: sign, limbs: limbs}
}

// normalize strips trailing (most significant) zero limbs from limbs,
// always leaving at least one behind.
func normalize(limbs []uint64) []uint64 {
	if len(limbs) == 0 {
		return []uint64{0}
	}
	n := len(limbs)
	for n > 1 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}

// Copy returns a deep copy of x.
func (x *BigInt) Copy() *BigInt {
	checkInvariants(x)
	limbs := make([]uint64, len(x.limbs))
	copy(limbs, x.limbs)
	return &BigInt{sign: x.sign, limbs: limbs}
}

// IsZero reports whether x is exactly zero.
func (x *BigInt) IsZero() bool {
	checkInvariants(x)
	return len(x.limbs) == 1 && x.limbs[0] == 0
}

// IsNegative reports whether x is strictly less than zero.
func (x *BigInt) IsNegative() bool {
	checkInvariants(x)
	return !x.sign && !x.IsZero()
}

// Sign returns -1, 0 or 1 according to whether x is negative, zero or
// positive.
func (x *BigInt) Sign() int {
	checkInvariants(x)
	switch {
	case x.IsZero():
		return 0
	case x.sign:
		return 1
	default:
		return -1
	}
}

// Limbs returns a copy of x's magnitude, least-significant limb
// first. Mutating the returned slice has no effect on x.
func (x *BigInt) Limbs() []uint64 {
	checkInvariants(x)
	limbs := make([]uint64, len(x.limbs))
	copy(limbs, x.limbs)
	return limbs
}

// NegateInPlace flips the sign of x, except when x is zero, where it
// is a no-op (this preserves the invariant that zero is always
// represented with a non-negative sign).
func (x *BigInt) NegateInPlace() {
	checkInvariants(x)
	if x.IsZero() {
		return
	}
	x.sign = !x.sign
}

func (x *BigInt) String() string {
	checkInvariants(x)
	return x.stringDecimal()
}

func (x *BigInt) GoString() string {
	return fmt.Sprintf("bigint.BigInt(%s)", x.String())
}

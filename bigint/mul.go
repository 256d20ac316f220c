package bigint

import "github.com/jetsetilly/bignum/limb"

// Mul returns a * b, computed with recursive Karatsuba multiplication
// over the magnitudes, falling back to limb.MulWide at the
// single-limb leaf.
func Mul(a, b *BigInt) *BigInt {
	checkInvariants(a)
	checkInvariants(b)

	// positive iff the operands agree in sign (both non-negative or
	// both negative) -- the XOR of the two "is negative" bits,
	// expressed as equality of the two "is non-negative" bits.
	sign := a.sign == b.sign
	limbs := mulMagnitude(half{limbs: a.limbs}, half{limbs: b.limbs})
	return fromLimbsLS(sign, limbs)
}

// half is a view into a limb slice, or a phantom zero standing in for
// one without allocating: the "missing high half" case that comes up
// whenever a Karatsuba split operand is shorter than the split point.
// It is a small tagged union rather than a nil slice, per the design
// note that a phantom zero should be an explicit variant, not an
// overloaded null.
type half struct {
	limbs   []uint64
	phantom bool
}

func phantomZero() half {
	return half{phantom: true}
}

func (h half) isZero() bool {
	if h.phantom {
		return true
	}
	return isZeroLimbs(h.limbs)
}

func (h half) asLimbs() []uint64 {
	if h.phantom {
		return []uint64{0}
	}
	return h.limbs
}

func (h half) length() int {
	if h.phantom {
		return 0
	}
	return len(h.limbs)
}

func isZeroLimbs(limbs []uint64) bool {
	for _, v := range limbs {
		if v != 0 {
			return false
		}
	}
	return true
}

// mulMagnitude multiplies two non-negative magnitudes, each given as
// a (possibly phantom) limb view, recursing via Karatsuba's split
// until both sides are single limbs (or one side is zero or one).
func mulMagnitude(a, b half) []uint64 {
	if a.isZero() || b.isZero() {
		return []uint64{0}
	}
	if a.length() == 1 && a.asLimbs()[0] == 1 {
		return copyOf(b.asLimbs())
	}
	if b.length() == 1 && b.asLimbs()[0] == 1 {
		return copyOf(a.asLimbs())
	}
	if a.length() == 1 && b.length() == 1 {
		lo, hi := limb.MulWide(a.asLimbs()[0], b.asLimbs()[0])
		if hi == 0 {
			return []uint64{lo}
		}
		return []uint64{lo, hi}
	}

	m := a.length()
	if b.length() > m {
		m = b.length()
	}
	split := (m + 1) / 2

	aLo, aHi := splitHalf(a, split)
	bLo, bHi := splitHalf(b, split)

	z2 := mulMagnitude(aHi, bHi)
	z0 := mulMagnitude(aLo, bLo)

	sumA := addHalves(aHi, aLo)
	sumB := addHalves(bHi, bLo)
	z1raw := mulMagnitude(half{limbs: sumA}, half{limbs: sumB})

	// both subtractions below are provably non-negative: z1raw =
	// (aHi+aLo)(bHi+bLo) = z2 + z1 + z0, so z1raw - z2 - z0 == z1 and
	// z1raw >= z2 + z0 for non-negative inputs.
	z1 := unsignedSub(unsignedSub(z1raw, z2), z0)

	result := unsignedAdd(shiftLeftLimbs(z2, 2*split), shiftLeftLimbs(z1, split))
	result = unsignedAdd(result, z0)
	return result
}

// splitHalf divides h into a low part (the least significant `split`
// limbs) and a high part (everything above), with the high part
// represented as a phantom zero if h has `split` limbs or fewer.
func splitHalf(h half, split int) (lo, hi half) {
	limbs := h.asLimbs()
	if len(limbs) <= split {
		return half{limbs: limbs}, phantomZero()
	}
	return half{limbs: limbs[:split]}, half{limbs: limbs[split:]}
}

// addHalves returns the normalised sum of two (possibly phantom)
// halves as a plain limb slice.
func addHalves(a, b half) []uint64 {
	if a.isZero() {
		return copyOf(b.asLimbs())
	}
	if b.isZero() {
		return copyOf(a.asLimbs())
	}
	return unsignedAdd(a.asLimbs(), b.asLimbs())
}

// shiftLeftLimbs returns v shifted left by k whole limbs (i.e.
// multiplied by 2^(64*k)): k zero limbs are inserted at the low end.
// A zero value shifts to zero regardless of k, since there is nothing
// for the shift to make non-zero.
func shiftLeftLimbs(v []uint64, k int) []uint64 {
	if k == 0 || isZeroLimbs(v) {
		return copyOf(v)
	}
	out := make([]uint64, len(v)+k)
	copy(out[k:], v)
	return out
}

func copyOf(v []uint64) []uint64 {
	out := make([]uint64, len(v))
	copy(out, v)
	return out
}

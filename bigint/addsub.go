package bigint

import "github.com/jetsetilly/bignum/limb"

// unsignedAdd returns the normalised sum of two magnitudes (no sign
// involved). It allocates max(len(a), len(b)) + 1 limbs up front and
// runs limb.AddWithCarry across them, reading 0 for whichever operand
// has run out of limbs; the carry out of the top operand limb is
// stored in the spare limb, so nothing is lost.
func unsignedAdd(a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n+1)

	var carry uint64
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i], carry = limb.AddWithCarry(av, bv, carry)
	}
	out[n] = carry

	return normalize(out)
}

// unsignedSub returns the normalised difference a - b of two
// magnitudes. The caller must ensure a >= b; violating this produces
// a result with an unresolved final borrow, which is a programmer
// error in any caller of this unexported function (every call site in
// this package only ever subtracts a smaller or equal magnitude from
// a larger one).
func unsignedSub(a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n)

	var borrow uint64
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i], borrow = limb.SubWithBorrow(av, bv, borrow)
	}
	if borrow != 0 {
		panic("bigint: unsignedSub called with a < b")
	}

	return normalize(out)
}

// Add returns a + b.
func Add(a, b *BigInt) *BigInt {
	checkInvariants(a)
	checkInvariants(b)

	switch {
	case a.sign && b.sign:
		return fromLimbsLS(true, unsignedAdd(a.limbs, b.limbs))
	case !a.sign && !b.sign:
		return fromLimbsLS(false, unsignedAdd(a.limbs, b.limbs))
	case a.sign && !b.sign:
		// a + (-|b|) == a - |b|
		return signedDiff(a.limbs, true, b.limbs)
	default:
		// (-|a|) + b == b - |a|
		return signedDiff(b.limbs, true, a.limbs)
	}
}

// Sub returns a - b.
func Sub(a, b *BigInt) *BigInt {
	checkInvariants(a)
	checkInvariants(b)

	switch {
	case a.sign && !b.sign:
		// a - (-|b|) == a + |b|
		return fromLimbsLS(true, unsignedAdd(a.limbs, b.limbs))
	case !a.sign && b.sign:
		// (-|a|) - b == -(|a| + b)
		return fromLimbsLS(false, unsignedAdd(a.limbs, b.limbs))
	case a.sign && b.sign:
		// a - b, both non-negative
		return signedDiff(a.limbs, true, b.limbs)
	default:
		// (-|a|) - (-|b|) == |b| - |a|
		return signedDiff(b.limbs, true, a.limbs)
	}
}

// signedDiff computes x - y, where x and y are plain magnitudes and
// positiveWhenXLarger names the sign to apply when x >= y; it is
// flipped when the operands must be swapped because y is the larger
// magnitude. Subtracting equal magnitudes yields canonical positive
// zero via fromLimbsLS's own zero-sign normalisation.
func signedDiff(x []uint64, positiveWhenXLarger bool, y []uint64) *BigInt {
	if compareMagnitude(x, y) >= 0 {
		return fromLimbsLS(positiveWhenXLarger, unsignedSub(x, y))
	}
	return fromLimbsLS(!positiveWhenXLarger, unsignedSub(y, x))
}

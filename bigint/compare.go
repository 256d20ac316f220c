package bigint

// Compare returns -1, 0 or +1 according to whether a < b, a == b or
// a > b.
//
// Zero is checked before sign, so the result for a zero operand never
// depends on its sign field. Both operands first pass checkInvariants,
// which panics on a negative zero: a -0 is rejected, not compared
// equal to zero.
func Compare(a, b *BigInt) int {
	checkInvariants(a)
	checkInvariants(b)

	aZero, bZero := a.IsZero(), b.IsZero()
	switch {
	case aZero && bZero:
		return 0
	case aZero:
		if b.sign {
			return -1
		}
		return 1
	case bZero:
		if a.sign {
			return 1
		}
		return -1
	}

	if a.sign != b.sign {
		if a.sign {
			return 1
		}
		return -1
	}

	c := compareMagnitude(a.limbs, b.limbs)
	if !a.sign {
		c = -c
	}
	return c
}

// Equal reports whether a and b represent the same value. It
// short-circuits on sign, then limb count, before scanning limbs, so
// it is cheaper than Compare(a, b) == 0 for the common unequal case.
func Equal(a, b *BigInt) bool {
	checkInvariants(a)
	checkInvariants(b)

	aZero, bZero := a.IsZero(), b.IsZero()
	if aZero || bZero {
		return aZero && bZero
	}

	if a.sign != b.sign {
		return false
	}
	if len(a.limbs) != len(b.limbs) {
		return false
	}
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			return false
		}
	}
	return true
}

// compareMagnitude compares two normalised limb slices (magnitude
// only, no sign), most significant limb first, returning -1, 0 or +1.
// Normalisation makes the length comparison decisive: a longer
// normalised slice is always the larger magnitude.
func compareMagnitude(a, b []uint64) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

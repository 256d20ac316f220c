package bigint

// IncInPlace adds 1 to x in place.
//
// For a non-negative x this is the textbook ripple-carry increment:
// scan limbs low to high, add 1 to the first limb that isn't
// math.MaxUint64 and stop; every limb before it was all-ones and
// becomes zero (the carry); if every limb was all-ones a new limb
// with value 1 is appended.
//
// For a negative x, incrementing its value means decrementing its
// magnitude (-a++ == -(+a - 1)): -1 becomes 0, and anything with a
// larger magnitude moves towards zero, so the magnitude decrement is
// reused with the sign left alone except at the zero crossing, which
// magnitudeDecrement's own canonical-zero handling already produces
// with a positive sign.
func (x *BigInt) IncInPlace() {
	checkInvariants(x)
	if x.sign {
		magnitudeIncrement(x)
		return
	}
	magnitudeDecrement(x)
}

// DecInPlace subtracts 1 from x in place, the mirror image of
// IncInPlace: a non-negative x has its magnitude decremented
// (canonical zero decrements to -1); a negative x has its magnitude
// incremented (more negative).
func (x *BigInt) DecInPlace() {
	checkInvariants(x)
	if x.sign {
		magnitudeDecrement(x)
		return
	}
	magnitudeIncrement(x)
}

// magnitudeIncrement adds 1 to x.limbs in place, leaving x.sign
// untouched.
func magnitudeIncrement(x *BigInt) {
	for i := range x.limbs {
		x.limbs[i]++
		if x.limbs[i] != 0 {
			return
		}
		// this limb wrapped from all-ones to zero; carry into the next
	}
	// every limb was all-ones (including a canonical [0] limb rolling
	// over is impossible since 0+1 never wraps) so a new carry limb
	// is appended
	x.limbs = append(x.limbs, 1)
}

// magnitudeDecrement subtracts 1 from x.limbs in place. Decrementing
// canonical zero ([0]) produces magnitude 1 with the sign flipped to
// negative, i.e. x becomes -1, since 0 has no magnitude to borrow
// from.
func magnitudeDecrement(x *BigInt) {
	if x.IsZero() {
		x.limbs[0] = 1
		x.sign = false
		return
	}

	for i := range x.limbs {
		if x.limbs[i] != 0 {
			x.limbs[i]--
			x.limbs = normalize(x.limbs)
			// the only magnitude this decrement can take down to zero
			// is exactly 1 (limbs [1]): every higher magnitude still
			// has a nonzero limb left after the borrow resolves. Re-canonicalise the sign in that case, since a
			// zero magnitude must always carry the positive sign. Test
			// the raw limbs rather than x.IsZero(), which would run
			// checkInvariants while the sign is still transiently wrong
			// and panic on the negative-zero it is about to fix.
			if len(x.limbs) == 1 && x.limbs[0] == 0 {
				x.sign = true
			}
			return
		}
		x.limbs[i]-- // 0 - 1 wraps to all-ones, the borrow
	}
}

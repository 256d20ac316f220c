package limb

import "math/bits"

// AddWithCarry computes a + b + carryIn and returns the 64-bit result
// together with the carry out of the top bit. carryIn and the returned
// carry are both either 0 or 1.
func AddWithCarry(a, b, carryIn uint64) (sum, carryOut uint64) {
	sum, carryOut = bits.Add64(a, b, carryIn)
	return sum, carryOut
}

// SubWithBorrow computes a - b - borrowIn and returns the 64-bit
// result together with the borrow out of the top bit. borrowIn and the
// returned borrow are both either 0 or 1.
func SubWithBorrow(a, b, borrowIn uint64) (diff, borrowOut uint64) {
	diff, borrowOut = bits.Sub64(a, b, borrowIn)
	return diff, borrowOut
}

// MulWide multiplies a and b and returns the 128-bit product as a
// (low, high) pair of 64-bit halves: a*b == high<<64 | low.
func MulWide(a, b uint64) (low, high uint64) {
	high, low = bits.Mul64(a, b)
	return low, high
}

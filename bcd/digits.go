package bcd

const initialCapacity = 16

// Digits is a growable, least-significant-digit-first sequence of
// 4-bit values. During steady state (i.e. whenever it is handed to or
// returned from a caller outside this package) every value is in
// 0..9; internally, Double-Dabble and its inverse transiently hold
// values up to 12 while they shift and correct.
type Digits struct {
	v []uint8
}

// NewDigits returns an empty digit buffer with its initial capacity
// already reserved.
func NewDigits() *Digits {
	return &Digits{v: make([]uint8, 0, initialCapacity)}
}

// Len returns the number of digits currently held.
func (d *Digits) Len() int {
	return len(d.v)
}

// At returns the digit at index i, where index 0 is the
// least-significant decimal digit.
func (d *Digits) At(i int) uint8 {
	return d.v[i]
}

// Set overwrites the digit at index i.
func (d *Digits) Set(i int, val uint8) {
	d.v[i] = val
}

// Append adds a new most-significant digit (it becomes the entry at
// index Len()).
func (d *Digits) Append(val uint8) {
	d.v = append(d.v, val)
}

// IsZero reports whether the buffer represents the number zero: a
// single digit of value 0, or all digits zero.
func (d *Digits) IsZero() bool {
	for _, v := range d.v {
		if v != 0 {
			return false
		}
	}
	return true
}

package bigint

import (
	"math/bits"
	"strings"

	"github.com/jetsetilly/bignum/bcd"
)

const (
	hexDigitsLower = "0123456789abcdef"
	hexDigitsUpper = "0123456789ABCDEF"
	binDigits      = "01"
)

// stringDecimal renders x as a decimal literal: an optional '-',
// followed by the digits of its magnitude with no leading zeros
// except for the literal "0". The BCD buffer is produced fresh from
// the limbs (via Double-Dabble) rather than reusing anything cached
// from Parse, so a value parsed from "+0021" still formats as "21".
func (x *BigInt) stringDecimal() string {
	d := bcd.BinaryToBCD(x.limbs)

	size := d.Len()
	if x.IsNegative() {
		size++
	}

	var b strings.Builder
	b.Grow(size)
	if x.IsNegative() {
		b.WriteByte('-')
	}
	for i := d.Len() - 1; i >= 0; i-- {
		b.WriteByte('0' + d.At(i))
	}
	return b.String()
}

// StringHex renders x in hexadecimal, most significant limb first,
// one group of up to 16 nybbles per limb. prefix emits a leading
// "0x"; gaps separates adjacent limb groups with a single space;
// trimFirst strips the leading hex zeros of the top limb's group down
// to a minimum of one nybble (even for a zero value); uppercase
// selects A-F over a-f.
func (x *BigInt) StringHex(prefix, gaps, trimFirst, uppercase bool) string {
	digits := hexDigitsLower
	if uppercase {
		digits = hexDigitsUpper
	}
	return x.stringGrouped(prefix, gaps, trimFirst, "0x", 16, 4, digits)
}

// StringBin renders x in binary, most significant limb first, one
// group of up to 64 bits per limb. The flags behave as in StringHex,
// with the prefix being "0b" and the group width 64 bits.
func (x *BigInt) StringBin(prefix, gaps, trimFirst bool) string {
	return x.stringGrouped(prefix, gaps, trimFirst, "0b", 64, 1, binDigits)
}

// stringGrouped implements the shared structure of StringHex and
// StringBin: an optional sign, an optional prefix, then the limbs
// from most to least significant rendered as fixed-width groups of
// symbols (nybbles or bits) in the given alphabet, optionally
// separated by a space and optionally trimmed in the leading group.
// groupWidth is the full group width in symbols (16 or 64);
// bitsPerSymbol is 4 for hex, 1 for binary.
func (x *BigInt) stringGrouped(prefix, gaps, trimFirst bool, prefixText string, groupWidth, bitsPerSymbol int, alphabet string) string {
	n := len(x.limbs)

	firstWidth := groupWidth
	if trimFirst {
		firstWidth = significantSymbols(x.limbs[n-1], bitsPerSymbol)
	}

	size := firstWidth + (n-1)*groupWidth
	if gaps && n > 1 {
		size += n - 1
	}
	if x.IsNegative() {
		size++
	}
	if prefix {
		size += len(prefixText)
	}

	var b strings.Builder
	b.Grow(size)
	if x.IsNegative() {
		b.WriteByte('-')
	}
	if prefix {
		b.WriteString(prefixText)
	}

	for i := n - 1; i >= 0; i-- {
		w := groupWidth
		if i == n-1 && trimFirst {
			w = firstWidth
		}
		writeSymbols(&b, x.limbs[i], w, bitsPerSymbol, alphabet)
		if gaps && i > 0 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// significantSymbols reports how many symbols (each bitsPerSymbol
// bits wide) are needed to show v with no leading zero symbol, with a
// floor of 1 (so zero renders as a single symbol).
func significantSymbols(v uint64, bitsPerSymbol int) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + bitsPerSymbol - 1) / bitsPerSymbol
}

// writeSymbols writes the low width symbols of v, most significant
// symbol first.
func writeSymbols(b *strings.Builder, v uint64, width, bitsPerSymbol int, alphabet string) {
	mask := uint64(1<<uint(bitsPerSymbol)) - 1
	for i := width - 1; i >= 0; i-- {
		shift := uint(i * bitsPerSymbol)
		b.WriteByte(alphabet[(v>>shift)&mask])
	}
}

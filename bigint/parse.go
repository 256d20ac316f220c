package bigint

import (
	"github.com/jetsetilly/bignum/bcd"
	"github.com/jetsetilly/bignum/bigerr"
)

// Parse converts a decimal literal matching /^[+-]?[0-9][0-9_',.]*$/
// into a BigInt. The separators _, ', , and . are purely visual and
// are discarded; they are never treated as a decimal point. On
// failure it returns one of the *bigerr.ParseError values documented
// on the Kind constants in package bigerr.
func Parse(s string) (*BigInt, error) {
	if s == "" {
		return nil, bigerr.NewEmptyString()
	}

	idx := 0
	sign := true
	if s[0] == '+' || s[0] == '-' {
		if len(s) == 1 {
			if s[0] == '-' {
				return nil, bigerr.NewLoneMinus()
			}
			return nil, bigerr.NewLonePlus()
		}
		sign = s[0] != '-'
		idx = 1
	}

	firstPos := idx

	// digitsMSFirst collects every digit byte (0-9) encountered, in
	// the order they appear in the input, i.e. most significant
	// first.
	var digitsMSFirst []uint8

	for ; idx < len(s); idx++ {
		c := s[idx]
		switch {
		case c >= '0' && c <= '9':
			digitsMSFirst = append(digitsMSFirst, c-'0')
		case isSeparator(c):
			if idx == firstPos {
				return nil, bigerr.NewLeadingSeparator(idx, c)
			}
		default:
			return nil, bigerr.NewInvalidCharacter(idx, c)
		}
	}

	bd := bcd.NewDigits()
	for i := len(digitsMSFirst) - 1; i >= 0; i-- {
		bd.Append(digitsMSFirst[i])
	}

	limbs := bcd.BCDToBinary(bd)
	isZero := len(limbs) == 1 && limbs[0] == 0
	if isZero && !sign {
		return nil, bigerr.NewNegativeZero(len(s))
	}

	return fromLimbsLS(sign, limbs), nil
}

func isSeparator(c byte) bool {
	return c == '_' || c == '\'' || c == ',' || c == '.'
}

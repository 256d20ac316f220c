package bigint_test

import (
	"strconv"
	"testing"

	"github.com/jetsetilly/bignum/bigint"
	"github.com/jetsetilly/bignum/internal/bigtest"
)

func TestStringHexTrimmedUppercase(t *testing.T) {
	x, err := bigint.Parse("-384324_132132_3123123_3")
	bigtest.ExpectSuccess(t, err)
	got := x.StringHex(true, true, true, true)
	bigtest.Equate(t, got, "-0x2 155B5C319BAD3101")
}

func TestStringBinTrimmed(t *testing.T) {
	x := bigint.FromU64(0xDEADBEEF)
	got := x.StringBin(true, true, true)
	bigtest.Equate(t, got, "0b11011110101011011011111011101111")
}

func TestStringHexZeroTrimmed(t *testing.T) {
	x := bigint.Zero()
	bigtest.Equate(t, x.StringHex(true, false, true, false), "0x0")
}

func TestStringHexUntrimmedPadsFullLimb(t *testing.T) {
	x := bigint.FromU64(1)
	bigtest.Equate(t, x.StringHex(false, false, false, false), "0000000000000001")
}

func TestStringBinUntrimmedPadsFullLimb(t *testing.T) {
	x := bigint.FromU64(1)
	want := ""
	for i := 0; i < 63; i++ {
		want += "0"
	}
	want += "1"
	bigtest.Equate(t, x.StringBin(false, false, false), want)
}

func TestStringHexGapsMultiLimb(t *testing.T) {
	x := bigint.FromLimbs(1, 2)
	bigtest.Equate(t, x.StringHex(false, true, true, false), "1 0000000000000002")
}

func TestHexRoundTripViaLimbs(t *testing.T) {
	x, err := bigint.Parse("123456789012345678901234567890")
	bigtest.ExpectSuccess(t, err)

	hex := x.StringHex(false, false, false, false)
	if len(hex)%16 != 0 {
		t.Fatalf("untrimmed, ungapped hex length %d not a multiple of 16", len(hex))
	}

	var msbFirst []uint64
	for i := 0; i < len(hex); i += 16 {
		v, err := strconv.ParseUint(hex[i:i+16], 16, 64)
		bigtest.ExpectSuccess(t, err)
		msbFirst = append(msbFirst, v)
	}
	bigtest.Equate(t, bigint.Equal(bigint.FromLimbs(msbFirst...), x), true)
}

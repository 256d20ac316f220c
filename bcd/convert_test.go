package bcd_test

import (
	"testing"

	"github.com/jetsetilly/bignum/bcd"
)

func digitsToSlice(d *bcd.Digits) []uint8 {
	s := make([]uint8, d.Len())
	for i := range s {
		s[i] = d.At(i)
	}
	return s
}

func equalDigits(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBinaryToBCDZero(t *testing.T) {
	d := bcd.BinaryToBCD([]uint64{0})
	if got := digitsToSlice(d); !equalDigits(got, []uint8{0}) {
		t.Fatalf("BinaryToBCD(0) = %v, want [0]", got)
	}
}

func TestBinaryToBCDThirteen(t *testing.T) {
	d := bcd.BinaryToBCD([]uint64{13})
	if got := digitsToSlice(d); !equalDigits(got, []uint8{3, 1}) {
		t.Fatalf("BinaryToBCD(13) = %v, want [3 1]", got)
	}
}

func TestBinaryToBCDNinetyNine(t *testing.T) {
	d := bcd.BinaryToBCD([]uint64{99})
	if got := digitsToSlice(d); !equalDigits(got, []uint8{9, 9}) {
		t.Fatalf("BinaryToBCD(99) = %v, want [9 9]", got)
	}
}

func TestRoundTripSmall(t *testing.T) {
	for _, v := range []uint64{0, 1, 9, 10, 13, 99, 100, 255, 1000, 65535, 123456789} {
		d := bcd.BinaryToBCD([]uint64{v})
		limbs := bcd.BCDToBinary(d)
		if len(limbs) != 1 || limbs[0] != v {
			t.Fatalf("round trip of %d produced limbs %v", v, limbs)
		}
	}
}

func TestRoundTripMultiLimb(t *testing.T) {
	limbs := []uint64{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}
	d := bcd.BinaryToBCD(limbs)
	back := bcd.BCDToBinary(d)
	if len(back) != 2 || back[0] != limbs[0] || back[1] != limbs[1] {
		t.Fatalf("round trip of two max limbs produced %v", back)
	}
}

func TestBCDToBinaryDirect(t *testing.T) {
	d := bcd.NewDigits()
	d.Append(3)
	d.Append(1)
	limbs := bcd.BCDToBinary(d)
	if len(limbs) != 1 || limbs[0] != 13 {
		t.Fatalf("BCDToBinary([3 1]) = %v, want [13]", limbs)
	}
}

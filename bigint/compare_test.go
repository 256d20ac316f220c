package bigint_test

import (
	"testing"

	"github.com/jetsetilly/bignum/bigint"
	"github.com/jetsetilly/bignum/internal/bigtest"
)

func mustParse(t *testing.T, s string) *bigint.BigInt {
	t.Helper()
	x, err := bigint.Parse(s)
	bigtest.ExpectSuccess(t, err)
	return x
}

func TestCompareOrdering(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"-1", "0", -1},
		{"0", "-1", 1},
		{"-1", "-2", 1},
		{"-2", "-1", -1},
		{"123456789012345678901234567890", "123456789012345678901234567889", 1},
		{"18446744073709551616", "18446744073709551615", 1}, // 2^64 vs 2^64-1
		{"-18446744073709551616", "-18446744073709551615", -1},
	}
	for _, c := range cases {
		a := mustParse(t, c.a)
		b := mustParse(t, c.b)
		bigtest.Equate(t, bigint.Compare(a, b), c.want)
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	values := []string{"-5", "0", "5", "18446744073709551616", "-18446744073709551616"}
	for _, av := range values {
		for _, bv := range values {
			a := mustParse(t, av)
			b := mustParse(t, bv)
			if bigint.Compare(a, b) != -bigint.Compare(b, a) {
				t.Fatalf("compare(%s,%s) != -compare(%s,%s)", av, bv, bv, av)
			}
		}
	}
}

func TestCompareTransitive(t *testing.T) {
	a := mustParse(t, "-100")
	b := mustParse(t, "0")
	c := mustParse(t, "100")
	if !(bigint.Compare(a, b) < 0 && bigint.Compare(b, c) < 0 && bigint.Compare(a, c) < 0) {
		t.Fatalf("transitivity failed for -100 < 0 < 100")
	}
}

func TestEqualMatchesCompareZero(t *testing.T) {
	values := []string{"-5", "0", "5", "18446744073709551616"}
	for _, av := range values {
		for _, bv := range values {
			a := mustParse(t, av)
			b := mustParse(t, bv)
			want := bigint.Compare(a, b) == 0
			bigtest.Equate(t, bigint.Equal(a, b), want)
		}
	}
}

func TestEqualPlusZeroAndZero(t *testing.T) {
	a := mustParse(t, "+0")
	b := mustParse(t, "0")
	bigtest.Equate(t, bigint.Equal(a, b), true)
}

// This file is part of bignum.
//
// bignum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bignum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bignum.  If not, see <https://www.gnu.org/licenses/>.

// Package bigtest is a small internal assertion helper, narrowing
// testing.T.Fatalf boilerplate for the comparison-heavy tests in this
// module, in the spirit of (though not the same package as) the
// gopher2600 test package's Equate/ExpectSuccess/ExpectFailure calls.
package bigtest

import "testing"

// Equate fails the test unless got == want.
func Equate(t *testing.T, got, want interface{}) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// ExpectSuccess fails the test if got is a non-nil error or false.
func ExpectSuccess(t *testing.T, got interface{}) {
	t.Helper()
	switch v := got.(type) {
	case error:
		if v != nil {
			t.Fatalf("expected success, got error: %v", v)
		}
	case bool:
		if !v {
			t.Fatalf("expected success, got false")
		}
	case nil:
		// nil error, fine
	default:
		t.Fatalf("ExpectSuccess: unsupported type %T", got)
	}
}

// ExpectFailure fails the test if got is a nil error or true.
func ExpectFailure(t *testing.T, got interface{}) {
	t.Helper()
	switch v := got.(type) {
	case error:
		if v == nil {
			t.Fatalf("expected failure, got nil error")
		}
	case bool:
		if v {
			t.Fatalf("expected failure, got true")
		}
	case nil:
		t.Fatalf("expected failure, got nil")
	default:
		t.Fatalf("ExpectFailure: unsupported type %T", got)
	}
}

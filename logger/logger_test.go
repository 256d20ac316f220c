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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/bignum/logger"
)

func TestPackageLevelLogger(t *testing.T) {
	defer logger.Clear()
	logger.Clear()

	var w strings.Builder

	logger.Write(&w)
	if w.String() != "" {
		t.Fatalf("got %q, want empty", w.String())
	}

	logger.Log("test", "this is a test")
	w.Reset()
	logger.Write(&w)
	if w.String() != "test: this is a test\n" {
		t.Fatalf("got %q", w.String())
	}

	logger.Log("test2", "this is another test")
	w.Reset()
	logger.Write(&w)
	want := "test: this is a test\ntest2: this is another test\n"
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(&w, 100)
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}

	// asking for exactly the correct number of entries is okay
	w.Reset()
	logger.Tail(&w, 2)
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(&w, 1)
	if w.String() != "test2: this is another test\n" {
		t.Fatalf("got %q", w.String())
	}

	// and no entries
	w.Reset()
	logger.Tail(&w, 0)
	if w.String() != "" {
		t.Fatalf("got %q, want empty", w.String())
	}
}

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

// Package logger is the central, process-wide log used by the
// auxiliary cmd/ tools (bigview, bigbench, bigcalc). The
// bigint/bcd/limb/bigerr core never imports it: per the specification
// the library itself performs no logging, configuration or process-wide
// state of its own.
package logger

import "io"

// central is the single process-wide log backing the package-level
// Log/Logf/Write/Tail functions below.
var central = NewLogger(1000)

// Log appends an always-allowed entry to the central log.
func Log(tag string, detail interface{}) {
	central.Log(Allow, tag, detail)
}

// Logf is Log with a printf-style detail.
func Logf(permission Permission, tag string, format string, args ...interface{}) {
	central.Logf(permission, tag, format, args...)
}

// Write renders the full central log.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail renders the most recent n entries of the central log.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}

// Clear empties the central log.
func Clear() {
	central.Clear()
}

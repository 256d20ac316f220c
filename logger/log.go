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

package logger

import (
	"fmt"
	"io"
	"sync"
)

// Permission is consulted before every log entry is recorded, so that
// a caller can mute a noisy source (or a noisy build) without
// threading a boolean through every call site.
type Permission interface {
	AllowLogging() bool
}

// alwaysAllow is the Permission used by Allow.
type alwaysAllow struct{}

func (alwaysAllow) AllowLogging() bool { return true }

// Allow is the Permission to pass when a log entry should never be
// suppressed.
var Allow Permission = alwaysAllow{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.detail)
}

// Logger is a fixed-capacity ring buffer of log entries. The
// package-level Log/Logf/Write/Tail functions wrap a single central
// Logger; NewLogger is exposed so auxiliary tools (and tests) can keep
// their own, independent log.
type Logger struct {
	mu       sync.Mutex
	capacity int
	entries  []entry
}

// NewLogger returns a Logger that keeps at most capacity entries,
// discarding the oldest once full.
func NewLogger(capacity int) *Logger {
	return &Logger{capacity: capacity}
}

// detailString renders detail the way Log does: error's Error(),
// fmt.Stringer's String(), or fmt's %v for anything else.
func detailString(detail interface{}) string {
	switch v := detail.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Log appends a single entry if permission allows it.
func (l *Logger) Log(permission Permission, tag string, detail interface{}) {
	if !permission.AllowLogging() {
		return
	}
	l.append(tag, detailString(detail))
}

// Logf is Log with a printf-style detail.
func (l *Logger) Logf(permission Permission, tag string, format string, args ...interface{}) {
	if !permission.AllowLogging() {
		return
	}
	l.append(tag, fmt.Sprintf(format, args...))
}

func (l *Logger) append(tag, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry{tag: tag, detail: detail})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Write renders every entry currently held, oldest first.
func (l *Logger) Write(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		io.WriteString(w, e.String())
	}
}

// Tail renders the most recent n entries, oldest first; n larger than
// the number of entries held renders everything, and n of 0 or less
// renders nothing.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 {
		return
	}
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	for _, e := range l.entries[start:] {
		io.WriteString(w, e.String())
	}
}

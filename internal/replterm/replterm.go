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

// Package replterm is a POSIX terminal wrapper for bigcalc's
// line-at-a-time REPL, adapted from the teacher's
// debugger/terminal/colorterm/easyterm package: the same
// termios-backed canonical/cbreak mode switch and input/output file
// handles, trimmed to what a single-line REPL needs (no window-resize
// geometry tracking, since bigcalc never draws anything that depends
// on terminal width).
package replterm

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/pkg/term/termios"
)

// Term wraps stdin/stdout in canonical and cbreak termios attribute
// sets, so bigcalc can read one character at a time (for backspace
// handling) without waiting on the line discipline to buffer a whole
// line first.
type Term struct {
	input  *os.File
	output *os.File

	canonicalAttr syscall.Termios
	cbreakAttr    syscall.Termios
}

// Open initialises a Term over the given input/output files.
func Open(input, output *os.File) (*Term, error) {
	if input == nil || output == nil {
		return nil, fmt.Errorf("replterm: input and output files are required")
	}

	t := &Term{input: input, output: output}

	if err := termios.Tcgetattr(t.input.Fd(), &t.canonicalAttr); err != nil {
		return nil, fmt.Errorf("replterm: %w", err)
	}
	t.cbreakAttr = t.canonicalAttr
	termios.Cfmakecbreak(&t.cbreakAttr)

	return t, nil
}

// CBreakMode switches to character-at-a-time input with local echo
// turned off, used while reading a single line with custom backspace
// handling.
func (t *Term) CBreakMode() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.cbreakAttr)
}

// CanonicalMode restores the terminal's original line-buffered mode.
func (t *Term) CanonicalMode() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.canonicalAttr)
}

// ReadLine reads one line of input in cbreak mode, handling backspace
// (both ASCII BS and DEL) and echoing typed characters itself, since
// cbreak mode does not echo.
func (t *Term) ReadLine(prompt string) (string, error) {
	if err := t.CBreakMode(); err != nil {
		return "", err
	}
	defer t.CanonicalMode()

	fmt.Fprint(t.output, prompt)

	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := t.input.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			continue
		}
		switch buf[0] {
		case '\r', '\n':
			fmt.Fprint(t.output, "\r\n")
			return string(line), nil
		case 127, 8: // DEL, BS
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(t.output, "\b \b")
			}
		case 3: // ctrl-C
			return "", fmt.Errorf("replterm: interrupted")
		case 4: // ctrl-D
			return "", io.EOF
		default:
			line = append(line, buf[0])
			t.output.Write(buf)
		}
	}
}

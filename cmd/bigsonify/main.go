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

// Command bigsonify writes a WAV file sonifying the digits of a
// bigint literal given on the command line.
//
//	bigsonify -out out.wav 123456789012345678901234567890
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/bignum/bigint"
	"github.com/jetsetilly/bignum/sonify"
)

func main() {
	out := flag.String("out", "bigsonify.wav", "output WAV file path")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bigsonify [-out file.wav] <literal>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(literal, outPath string) error {
	x, err := bigint.Parse(literal)
	if err != nil {
		return fmt.Errorf("bigsonify: %w", err)
	}

	buf, err := sonify.Render(x)
	if err != nil {
		return fmt.Errorf("bigsonify: %w", err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("bigsonify: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sonify.SampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("bigsonify: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("bigsonify: %w", err)
	}

	digits := len(x.String())
	if x.IsNegative() {
		digits--
	}
	fmt.Printf("wrote %s (%d samples, %d digits)\n", outPath, len(buf.Data), digits)
	return nil
}

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

// Command bigcalc is an interactive terminal calculator over the
// bigint package. Each line is a sequence of decimal literals
// separated by +, - or *, evaluated left to right:
//
//	> 123456789012345678901234567890 * 2
//	246913578024691357802469135780
//
// Type "quit" or press ctrl-D to exit.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/bignum/internal/replterm"
	"github.com/jetsetilly/bignum/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	term, err := replterm.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println("bigcalc -- arbitrary-precision calculator (+, -, * ; \"quit\" to exit)")

	for {
		line, err := term.ReadLine("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			logger.Log("bigcalc", err.Error())
			return nil
		}

		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		result, err := evalLine(line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}

		fmt.Printf("%s\n", result.String())
	}
}

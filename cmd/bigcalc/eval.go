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

package main

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/bignum/bigint"
)

// evalLine evaluates a single left-to-right expression of bigint
// literals separated by +, - or *, e.g. "10_000 + 5 * -2". There is no
// operator precedence: each token is applied to the running total in
// the order it appears, which keeps the evaluator a single pass with
// no parser of its own -- appropriate for a calculator whose only job
// is to exercise Parse/Add/Sub/Mul interactively.
func evalLine(line string) (*bigint.BigInt, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	total, err := bigint.Parse(fields[0])
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", fields[0], err)
	}

	i := 1
	for i < len(fields) {
		op := fields[i]
		if i+1 >= len(fields) {
			return nil, fmt.Errorf("operator %q with no right-hand operand", op)
		}
		rhs, err := bigint.Parse(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("operand %q: %w", fields[i+1], err)
		}

		switch op {
		case "+":
			total = bigint.Add(total, rhs)
		case "-":
			total = bigint.Sub(total, rhs)
		case "*":
			total = bigint.Mul(total, rhs)
		default:
			return nil, fmt.Errorf("unknown operator %q", op)
		}

		i += 2
	}

	return total, nil
}

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
	"testing"

	"github.com/jetsetilly/bignum/internal/bigtest"
)

func TestEvalLineSingleOperand(t *testing.T) {
	result, err := evalLine("123456789012345678901234567890")
	bigtest.ExpectSuccess(t, err)
	bigtest.Equate(t, result.String(), "123456789012345678901234567890")
}

func TestEvalLineMultiply(t *testing.T) {
	result, err := evalLine("123456789012345678901234567890 * 2")
	bigtest.ExpectSuccess(t, err)
	bigtest.Equate(t, result.String(), "246913578024691357802469135780")
}

func TestEvalLineIsLeftToRightWithNoPrecedence(t *testing.T) {
	result, err := evalLine("10_000 + 5 * -2")
	bigtest.ExpectSuccess(t, err)
	bigtest.Equate(t, result.String(), "-20010")
}

func TestEvalLineSubtraction(t *testing.T) {
	result, err := evalLine("-10_00 - 5")
	bigtest.ExpectSuccess(t, err)
	bigtest.Equate(t, result.String(), "-1005")
}

func TestEvalLineEmptyIsError(t *testing.T) {
	_, err := evalLine("")
	bigtest.ExpectFailure(t, err)

	_, err = evalLine("   ")
	bigtest.ExpectFailure(t, err)
}

func TestEvalLineBadOperandIsError(t *testing.T) {
	_, err := evalLine("12x")
	bigtest.ExpectFailure(t, err)
}

func TestEvalLineDanglingOperatorIsError(t *testing.T) {
	_, err := evalLine("1 +")
	bigtest.ExpectFailure(t, err)
}

func TestEvalLineUnknownOperatorIsError(t *testing.T) {
	_, err := evalLine("1 / 2")
	bigtest.ExpectFailure(t, err)
}

func TestEvalLineVisualSeparatorsAreIgnored(t *testing.T) {
	result, err := evalLine("1'000,000.000 - 1")
	bigtest.ExpectSuccess(t, err)
	bigtest.Equate(t, result.String(), "999999999")
}

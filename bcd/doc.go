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

// Package bcd holds the growable binary-coded-decimal digit buffer
// used as the intermediate form between a bigint's limbs and its
// decimal text, plus the Double-Dabble and Reverse-Double-Dabble
// conversions between the two. It has no notion of sign; callers
// handle the sign separately.
package bcd

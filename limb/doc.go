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

// Package limb implements the single-word primitives that every other
// package in this module builds on: carry-propagating addition,
// borrow-propagating subtraction, and a wide multiply that splits its
// 128-bit result into high and low 64-bit halves.
//
// There is one portable implementation, built on math/bits, and it is
// the only one in this build: math/bits already dispatches to the
// relevant CPU intrinsic (ADCX/SBB/MULX and friends) on the platforms
// that have one, so there is no separate architecture-tagged fast path
// to maintain here.
package limb

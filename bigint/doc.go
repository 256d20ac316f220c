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

// Package bigint is an arbitrary-precision signed integer: parsing,
// decimal/hex/binary formatting, comparison, addition, subtraction,
// increment/decrement and Karatsuba multiplication over a sign and a
// base-2^64 limb vector. There is no division, modulo, bitwise
// logical operator, shift, exponentiation or modular arithmetic; none
// of those are representable with this package's operation set.
//
// A BigInt's limb slice is owned exclusively by that BigInt; nothing
// in this package aliases one BigInt's limbs into another's, so two
// BigInts can be used freely from different goroutines as long as
// neither is mutated (NegateInPlace, IncInPlace, DecInPlace) while
// another goroutine is reading it. There is no global state and no
// operation blocks.
//
// Every exported function that accepts a *BigInt assumes it was
// produced by this package (or is nil only where explicitly noted) and
// satisfies the normalisation invariant: at least one limb, no
// leading zero limb unless the value is exactly zero, and zero is
// always represented with a non-negative sign. Passing a BigInt that
// violates this is a programmer error and panics — the same posture
// the teacher's register package takes towards a caller that
// constructs a Register with an unsupported size or value type.
package bigint

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

// Package bigerr holds the one error type the bigint parser can
// return. Every other failure mode in this module (a malformed BigInt
// handed to an arithmetic operation, an invariant violated inside the
// BCD conversion internals) is a programmer error and panics instead;
// see bigint's package doc for why.
package bigerr

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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/bignum/bigint"
)

// dumpStructGraph renders x's in-memory limb representation as a
// Graphviz DOT file, the same way the teacher's commandline parser
// test dumps its parsed command tree with memviz.Map for debugging.
// Here it gives a visual on the sign/limbs layout behind a BigInt
// value, which is otherwise opaque from the outside (the type has no
// exported fields).
func dumpStructGraph(x *bigint.BigInt) (string, error) {
	path := "bigview.dot"
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("bigview: %w", err)
	}
	defer f.Close()

	memviz.Map(f, x)

	return path, nil
}

// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package builder

import (
	"math/bits"

	"github.com/karelpeeters/tcpu-synth/pkg/ir/logic"
)

// Const creates a constant bit: a zero-input LUT.
func (b *Builder) Const(v bool) Bit {
	return Bit{b.NewLut(nil, []bool{v})}
}

// Not creates the inverse of x.
func (b *Builder) Not(x Bit) Bit {
	return Bit{b.NewLut([]*logic.Signal{x.Signal}, []bool{true, false})}
}

// And returns the conjunction of one or more bits.
func (b *Builder) And(xs ...Bit) Bit {
	table := make([]bool, 1<<uint(len(xs)))
	table[len(table)-1] = true

	return Bit{b.NewLut(signalsOf(xs), table)}
}

// Or returns the disjunction of one or more bits.
func (b *Builder) Or(xs ...Bit) Bit {
	table := make([]bool, 1<<uint(len(xs)))

	for i := range table {
		table[i] = true
	}

	table[0] = false

	return Bit{b.NewLut(signalsOf(xs), table)}
}

// Xor returns the parity of one or more bits, per the pinned convention
// table[i] = popcount(i) mod 2.
func (b *Builder) Xor(xs ...Bit) Bit {
	table := make([]bool, 1<<uint(len(xs)))

	for i := range table {
		table[i] = bits.OnesCount(uint(i))%2 == 1
	}

	return Bit{b.NewLut(signalsOf(xs), table)}
}

// Nand returns the negated conjunction of one or more bits.
func (b *Builder) Nand(xs ...Bit) Bit {
	return b.Not(b.And(xs...))
}

// Nor returns the negated disjunction of one or more bits.
func (b *Builder) Nor(xs ...Bit) Bit {
	return b.Not(b.Or(xs...))
}

// Mux selects whenTrue if sel is set, whenFalse otherwise.
func (b *Builder) Mux(sel, whenTrue, whenFalse Bit) Bit {
	return b.Or(b.And(sel, whenTrue), b.And(b.Not(sel), whenFalse))
}

func signalsOf(xs []Bit) []*logic.Signal {
	out := make([]*logic.Signal, len(xs))
	for i, x := range xs {
		out[i] = x.Signal
	}

	return out
}

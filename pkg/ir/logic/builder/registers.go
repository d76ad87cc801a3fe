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

import "fmt"

// Register is a single flip-flop whose next-state input is not yet known at
// construction time. Building it in two steps - allocate now, Connect the
// computed next value later - lets front-end code write feedback loops
// (next-state depends on current-state) without the builder needing operator
// overloading: the original's `curr %= curr.add_trunc(1).delay()` becomes
// NewRegister then SetNext.
type Register struct {
	b      *Builder
	Output Bit
	next   Bit
}

// NewRegister allocates a flip-flop initialised to init. Its sampled current
// value is available immediately via Output; the value it will sample next
// clock edge must be supplied via SetNext before the outermost scope closes.
func (b *Builder) NewRegister(init bool, debugName string) *Register {
	pending := b.NewSignal(debugName + ".next")
	out := b.NewFf(pending, init)

	if debugName != "" {
		out.AddDebugName(debugName)
	}

	return &Register{b: b, Output: Bit{out}, next: Bit{pending}}
}

// SetNext stages the deferred connection from the computed next-state value
// to this register's flip-flop input.
func (r *Register) SetNext(value Bit) {
	r.b.Connect(r.next.Signal, value.Signal)
}

// RegisterVec is a width-wide vector of Registers, the vector analogue of
// Register for multi-bit state (e.g. the S1 bit-counter scenario).
type RegisterVec struct {
	b    *Builder
	regs []*Register
}

// NewRegisterVec allocates width flip-flops, each initialised to the
// corresponding bit of init (bit 0 least significant).
func (b *Builder) NewRegisterVec(width int, init uint64, debugName string) *RegisterVec {
	regs := make([]*Register, width)

	for i := range regs {
		bitInit := (init>>uint(i))&1 != 0
		regs[i] = b.NewRegister(bitInit, fmt.Sprintf("%s[%d]", debugName, i))
	}

	return &RegisterVec{b: b, regs: regs}
}

// Output returns the vector's current sampled value.
func (r *RegisterVec) Output() BitVec {
	bits := make([]Bit, len(r.regs))
	for i, reg := range r.regs {
		bits[i] = reg.Output
	}

	return BitVec{bits: bits}
}

// SetNext stages the deferred connections from value (which must have equal
// width) to every register in the vector.
func (r *RegisterVec) SetNext(value BitVec) {
	if value.Width() != len(r.regs) {
		panic("builder: RegisterVec.SetNext width mismatch")
	}

	for i, reg := range r.regs {
		reg.SetNext(value.Bit(i))
	}
}

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

// Package demo builds the literal example circuits of the design (bit
// counter, shifter, dead-code/dedup/const-prop exercises, a placement
// stress design), shared between the CLI subcommands and package tests.
package demo

import (
	"github.com/karelpeeters/tcpu-synth/pkg/ir/logic"
	"github.com/karelpeeters/tcpu-synth/pkg/ir/logic/builder"
)

// Design bundles a freshly built logic list (its builder scope already
// closed) with a human-readable name, for use by both the CLI and tests.
type Design struct {
	Name string
	List *logic.List
}

// BitCounter builds a width-bit register whose next state is its current
// state plus one, carry discarded, with every bit marked as an external
// output (S1 uses width 16).
func BitCounter(width int) *Design {
	l := logic.New()
	b := builder.New(l)

	reg := b.NewRegisterVec(width, 0, "count")
	next := b.Inc(reg.Output())
	reg.SetNext(next)
	b.MarkOutput(reg.Output())

	b.CloseScope()

	return &Design{Name: "bit-counter", List: l}
}

// Shifter builds the S2 scenario: a 3-bit input x, a 2-bit shift amount s,
// and an output x<<s zero-filled and truncated to 3 bits.
func Shifter() *Design {
	l := logic.New()
	b := builder.New(l)

	x := b.Input(3, "x")
	s := b.Input(2, "s")
	out := b.BarrelShiftLeft(x, s)
	b.MarkOutput(out)

	b.CloseScope()

	return &Design{Name: "shifter", List: l}
}

// DeadCode builds the S3 scenario: two independent registers, only one
// marked as an external output, so DCE should remove the other.
func DeadCode() *Design {
	l := logic.New()
	b := builder.New(l)

	live := b.NewRegister(false, "live")
	live.SetNext(b.Not(live.Output))
	b.MarkExternalOutput(live.Output.Signal)

	dead := b.NewRegister(true, "dead")
	dead.SetNext(b.Not(dead.Output))

	b.CloseScope()

	return &Design{Name: "dead-code", List: l}
}

// Dedup builds the S4 scenario: two structurally identical AND LUTs over the
// same ordered inputs, each feeding a different downstream consumer.
func Dedup() *Design {
	l := logic.New()
	b := builder.New(l)

	a := b.Input(1, "a").Bit(0)
	y := b.Input(1, "y").Bit(0)

	and1 := b.And(a, y)
	and2 := b.And(a, y)

	out1 := b.Not(and1)
	out2 := b.Or(and2, b.Const(false))

	b.MarkExternalOutput(out1.Signal, out2.Signal)

	b.CloseScope()

	return &Design{Name: "dedup", List: l}
}

// ConstPropThroughFf builds the S5 scenario: a register whose only input is
// a constant-0 LUT, itself initialized to 0, so const-prop should determine
// the register's output as constant 0 and eliminate it.
func ConstPropThroughFf() *Design {
	l := logic.New()
	b := builder.New(l)

	reg := b.NewRegister(false, "zero")
	reg.SetNext(b.Const(false))
	use := b.Not(reg.Output)
	b.MarkExternalOutput(use.Signal)

	b.CloseScope()

	return &Design{Name: "const-prop-ff", List: l}
}

// PlacementStress builds a ≥20-component combinational design (S6): an
// 8-bit ripple-carry adder over two 8-bit inputs, large enough that its
// lowered netlist comfortably exceeds 20 components.
func PlacementStress() *Design {
	l := logic.New()
	b := builder.New(l)

	a := b.Input(8, "a")
	y := b.Input(8, "y")
	sum := b.AddTrunc(a, y, b.Const(false))
	b.MarkOutput(sum)

	b.CloseScope()

	return &Design{Name: "placement-stress", List: l}
}

// All returns every named demo design, in a stable order.
func All() []*Design {
	return []*Design{
		BitCounter(16),
		Shifter(),
		DeadCode(),
		Dedup(),
		ConstPropThroughFf(),
		PlacementStress(),
	}
}

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
	"testing"

	"github.com/karelpeeters/tcpu-synth/pkg/ir/logic"
	"github.com/karelpeeters/tcpu-synth/pkg/sim"
	"github.com/karelpeeters/tcpu-synth/pkg/util/assert"
)

func evalGate(t *testing.T, build func(b *Builder, a, y Bit) Bit, av, bv bool) bool {
	t.Helper()

	l := logic.New()
	b := New(l)

	a := b.NewSignal("a")
	y := b.NewSignal("y")
	b.MarkExternalInput(a, y)

	out := build(b, Bit{a}, Bit{y})
	b.MarkExternalOutput(out.Signal)
	b.CloseScope()

	schedule := sim.Schedule{{a: av, y: bv}}

	history, err := sim.Run(l, schedule)
	assert.Equal(t, nil, err)

	return history[0][out.Signal] == sim.One
}

func Test_Gates_And(t *testing.T) {
	f := func(b *Builder, a, y Bit) Bit { return b.And(a, y) }

	assert.Equal(t, false, evalGate(t, f, false, false))
	assert.Equal(t, false, evalGate(t, f, true, false))
	assert.Equal(t, false, evalGate(t, f, false, true))
	assert.Equal(t, true, evalGate(t, f, true, true))
}

func Test_Gates_Or(t *testing.T) {
	f := func(b *Builder, a, y Bit) Bit { return b.Or(a, y) }

	assert.Equal(t, false, evalGate(t, f, false, false))
	assert.Equal(t, true, evalGate(t, f, true, false))
	assert.Equal(t, true, evalGate(t, f, false, true))
	assert.Equal(t, true, evalGate(t, f, true, true))
}

func Test_Gates_Xor_ParityConvention(t *testing.T) {
	f := func(b *Builder, a, y Bit) Bit { return b.Xor(a, y) }

	assert.Equal(t, false, evalGate(t, f, false, false))
	assert.Equal(t, true, evalGate(t, f, true, false))
	assert.Equal(t, true, evalGate(t, f, false, true))
	assert.Equal(t, false, evalGate(t, f, true, true))
}

func Test_Gates_Nand(t *testing.T) {
	f := func(b *Builder, a, y Bit) Bit { return b.Nand(a, y) }

	assert.Equal(t, true, evalGate(t, f, false, false))
	assert.Equal(t, false, evalGate(t, f, true, true))
}

func Test_Gates_Mux(t *testing.T) {
	l := logic.New()
	b := New(l)

	sel := b.NewSignal("sel")
	whenTrue := b.NewSignal("t")
	whenFalse := b.NewSignal("f")
	b.MarkExternalInput(sel, whenTrue, whenFalse)

	out := b.Mux(Bit{sel}, Bit{whenTrue}, Bit{whenFalse})
	b.MarkExternalOutput(out.Signal)
	b.CloseScope()

	for _, c := range []struct{ sel, tv, fv, want bool }{
		{true, true, false, true},
		{true, false, true, false},
		{false, true, false, false},
		{false, false, true, true},
	} {
		schedule := sim.Schedule{{sel: c.sel, whenTrue: c.tv, whenFalse: c.fv}}
		history, err := sim.Run(l, schedule)
		assert.Equal(t, nil, err)
		assert.Equal(t, c.want, history[0][out.Signal] == sim.One)
	}
}

func Test_Builder_DeferredConnectMergesSignals(t *testing.T) {
	l := logic.New()
	b := New(l)

	a := b.NewSignal("a")
	c := b.NewSignal("c")
	b.MarkExternalInput(a)

	notA := b.Not(Bit{a})
	b.Connect(c, notA.Signal)
	b.MarkExternalOutput(c)

	b.CloseScope()

	_, err := l.Validate(logic.ValidateFlags{})
	assert.Equal(t, nil, err)

	schedule := sim.Schedule{{a: true}, {a: false}}
	history, err := sim.Run(l, schedule)
	assert.Equal(t, nil, err)
	assert.Equal(t, sim.Zero, history[0][c])
	assert.Equal(t, sim.One, history[1][c])
}

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

func setInputs(t *testing.T, l *logic.List, x BitVec, value uint64) sim.Schedule {
	t.Helper()

	assignment := make(map[*logic.Signal]bool, x.Width())
	for i := 0; i < x.Width(); i++ {
		assignment[x.Bit(i).Signal] = (value>>uint(i))&1 != 0
	}

	return sim.Schedule{assignment}
}

func Test_AddTrunc_WrapsOnOverflow(t *testing.T) {
	l := logic.New()
	b := New(l)

	x := b.Input(3, "x")
	out := b.AddTrunc(x, BitVec{}, b.Const(true))
	b.MarkOutput(out)
	b.CloseScope()

	for _, c := range []struct{ x, want uint64 }{
		{0, 1}, {6, 7}, {7, 0},
	} {
		history, err := sim.Run(l, setInputs(t, l, x, c.x))
		assert.Equal(t, nil, err)

		var result uint64
		for i := 0; i < out.Width(); i++ {
			if history[0][out.Bit(i).Signal] == sim.One {
				result |= 1 << uint(i)
			}
		}

		assert.Equal(t, c.want, result)
	}
}

func Test_ShiftLeftTrunc_ZeroFills(t *testing.T) {
	l := logic.New()
	b := New(l)

	x := b.Input(3, "x")
	out := b.ShiftLeftTrunc(x, 1)
	b.MarkOutput(out)
	b.CloseScope()

	history, err := sim.Run(l, setInputs(t, l, x, 0b101))
	assert.Equal(t, nil, err)

	var result uint64
	for i := 0; i < out.Width(); i++ {
		if history[0][out.Bit(i).Signal] == sim.One {
			result |= 1 << uint(i)
		}
	}

	assert.Equal(t, uint64(0b010), result)
}

func Test_BarrelShiftLeft_ScenarioS2(t *testing.T) {
	l := logic.New()
	b := New(l)

	x := b.Input(3, "x")
	s := b.Input(2, "s")
	out := b.BarrelShiftLeft(x, s)
	b.MarkOutput(out)
	b.CloseScope()

	cases := []struct {
		x, s, want uint64
	}{
		{0b101, 0, 0b101},
		{0b101, 1, 0b010},
		{0b111, 2, 0b100},
	}

	for _, c := range cases {
		assignment := make(map[*logic.Signal]bool)

		for i := 0; i < x.Width(); i++ {
			assignment[x.Bit(i).Signal] = (c.x>>uint(i))&1 != 0
		}

		for i := 0; i < s.Width(); i++ {
			assignment[s.Bit(i).Signal] = (c.s>>uint(i))&1 != 0
		}

		history, err := sim.Run(l, sim.Schedule{assignment})
		assert.Equal(t, nil, err)

		var result uint64
		for i := 0; i < out.Width(); i++ {
			if history[0][out.Bit(i).Signal] == sim.One {
				result |= 1 << uint(i)
			}
		}

		assert.Equal(t, c.want, result)
	}
}

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

func Test_Register_InitDrivesStepZero(t *testing.T) {
	l := logic.New()
	b := New(l)

	reg := b.NewRegister(true, "r")
	reg.SetNext(b.Not(reg.Output))
	b.MarkExternalOutput(reg.Output.Signal)

	b.CloseScope()

	history, err := sim.Run(l, sim.ConstSchedule(l, 1, false))
	assert.Equal(t, nil, err)
	assert.Equal(t, sim.One, history[0][reg.Output.Signal])
}

func Test_RegisterVec_BitCounterScenarioS1(t *testing.T) {
	l := logic.New()
	b := New(l)

	reg := b.NewRegisterVec(16, 0, "count")
	next := b.Inc(reg.Output())
	reg.SetNext(next)
	b.MarkOutput(reg.Output())

	b.CloseScope()

	history, err := sim.Run(l, sim.ConstSchedule(l, 8, false))
	assert.Equal(t, nil, err)

	out := reg.Output()

	for step := 0; step < 8; step++ {
		var got uint64

		for i := 0; i < out.Width(); i++ {
			if history[step][out.Bit(i).Signal] == sim.One {
				got |= 1 << uint(i)
			}
		}

		assert.Equal(t, uint64(step), got)
	}
}

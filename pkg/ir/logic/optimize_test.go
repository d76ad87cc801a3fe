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
package logic

import (
	"testing"

	"github.com/karelpeeters/tcpu-synth/pkg/util/assert"
)

func Test_Optimize_FailsWithOpenScope(t *testing.T) {
	l := New()
	l.OpenScope()

	_, err := Optimize(l, DefaultOptimisationConfig)
	if _, ok := err.(*BuilderStateError); !ok {
		t.Fatalf("expected *BuilderStateError, got %v", err)
	}
}

func Test_Optimize_ValidatesAfterwards(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	zero := l.NewLut(nil, []bool{false})
	out := l.NewLut([]*Signal{a, zero}, []bool{false, true, false, false})
	buf := l.NewLut([]*Signal{out}, []bool{false, true})

	l.MarkExternalInput(a)
	l.MarkExternalOutput(buf)

	_, err := Optimize(l, DefaultOptimisationConfig)
	assert.Equal(t, nil, err)

	_, err = l.Validate(ValidateFlags{})
	assert.Equal(t, nil, err)
}

func Test_Optimize_ScenarioS3DeadCode(t *testing.T) {
	l := New()

	live := l.NewFf(nil, false)
	liveNot := l.NewLut([]*Signal{live}, []bool{true, false})
	l.ffs[0].Input = liveNot
	l.MarkExternalOutput(live)

	dead := l.NewFf(nil, true)
	deadNot := l.NewLut([]*Signal{dead}, []bool{true, false})
	l.ffs[1].Input = deadNot

	_, err := Optimize(l, DefaultOptimisationConfig)
	assert.Equal(t, nil, err)

	assert.Equal(t, 1, len(l.ffs))
	assert.Equal(t, live, l.ffs[0].Output)
}

func Test_Optimize_ScenarioS4Dedup(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	b := l.NewSignal("b")
	l.MarkExternalInput(a, b)

	and1 := l.NewLut([]*Signal{a, b}, []bool{false, false, false, true})
	and2 := l.NewLut([]*Signal{a, b}, []bool{false, false, false, true})
	down1 := l.NewLut([]*Signal{and1}, []bool{true, false})
	down2 := l.NewLut([]*Signal{and2}, []bool{true, false})
	l.MarkExternalOutput(down1, down2)

	_, err := Optimize(l, DefaultOptimisationConfig)
	assert.Equal(t, nil, err)

	// One AND and one inverter: the duplicate AND and the now-identical
	// second inverter are merged away.
	assert.Equal(t, 2, len(l.luts))
}

func Test_Optimize_ScenarioS5ConstPropThroughFf(t *testing.T) {
	l := New()
	zero := l.NewLut(nil, []bool{false})
	ffOut := l.NewFf(zero, false)
	use := l.NewLut([]*Signal{ffOut}, []bool{true, false})
	l.MarkExternalOutput(use)

	_, err := Optimize(l, DefaultOptimisationConfig)
	assert.Equal(t, nil, err)

	assert.Equal(t, 0, len(l.ffs))
	assert.Equal(t, 1, len(l.luts))
	assert.Equal(t, true, l.luts[0].Table[0])
}

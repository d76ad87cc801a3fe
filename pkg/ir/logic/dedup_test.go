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

func Test_Dedup_MergesEquivalentLuts(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	b := l.NewSignal("b")
	l.MarkExternalInput(a, b)

	and1 := l.NewLut([]*Signal{a, b}, []bool{false, false, false, true})
	and2 := l.NewLut([]*Signal{a, b}, []bool{false, false, false, true})

	down1 := l.NewLut([]*Signal{and1}, []bool{true, false})
	down2 := l.NewLut([]*Signal{and2}, []bool{true, false})

	l.MarkExternalOutput(down1, down2)

	changed := Dedup(l)

	assert.True(t, changed)
	// and2 collapses into and1, after which down2 reads and1 and is itself a
	// duplicate of down1: and1 and down1 remain.
	assert.Equal(t, 2, len(l.luts))

	for _, lut := range l.luts {
		if lut.Output == down1 || lut.Output == down2 {
			assert.Equal(t, 1, len(lut.Inputs))
			assert.Equal(t, and1, lut.Inputs[0])
		}
	}
}

func Test_Dedup_IsConfluent(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	l.MarkExternalInput(a)

	l.NewLut([]*Signal{a}, []bool{false, true})
	l.NewLut([]*Signal{a}, []bool{false, true})

	Dedup(l)
	countAfterFirst := len(l.luts)

	changed := Dedup(l)

	assert.False(t, changed)
	assert.Equal(t, countAfterFirst, len(l.luts))
}

func Test_Dedup_MergesEquivalentFfs(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	l.MarkExternalInput(a)

	ff1 := l.NewFf(a, true)
	ff2 := l.NewFf(a, true)

	down := l.NewLut([]*Signal{ff1, ff2}, []bool{false, false, false, true})
	l.MarkExternalOutput(down)

	changed := Dedup(l)

	assert.True(t, changed)
	assert.Equal(t, 1, len(l.ffs))

	var found *Lut

	for _, lut := range l.luts {
		if lut.Output == down {
			found = lut
		}
	}

	assert.Equal(t, found.Inputs[0], found.Inputs[1])
}

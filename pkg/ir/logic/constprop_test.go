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

func Test_ConstProp_RestrictsTableOverConstantInputs(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	zero := l.NewLut(nil, []bool{false})
	out := l.NewLut([]*Signal{a, zero}, []bool{false, true, false, false})
	l.MarkExternalInput(a)
	l.MarkExternalOutput(out)

	changed, warnings := ConstProp(l)

	assert.True(t, changed)
	assert.Equal(t, 0, len(warnings))

	var found *Lut

	for _, lut := range l.luts {
		if lut.Output == out {
			found = lut
		}
	}

	if found == nil {
		t.Fatalf("expected a LUT still driving out")
	}

	assert.Equal(t, 1, len(found.Inputs))
	assert.Equal(t, a, found.Inputs[0])
}

func Test_ConstProp_EliminatesDefiniteFf(t *testing.T) {
	l := New()
	zero := l.NewLut(nil, []bool{false})
	ffOut := l.NewFf(zero, false)
	l.MarkExternalOutput(ffOut)

	changed, _ := ConstProp(l)
	assert.True(t, changed)

	for _, ff := range l.ffs {
		if ff.Output == ffOut {
			t.Fatalf("expected FF driving ffOut to be removed")
		}
	}

	var found *Lut

	for _, lut := range l.luts {
		if lut.Output == ffOut {
			found = lut
		}
	}

	if found == nil {
		t.Fatalf("expected a constant LUT now driving ffOut")
	}

	assert.Equal(t, 0, len(found.Inputs))
	assert.Equal(t, false, found.Table[0])
}

func Test_ConstProp_WarnsOnUndef(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	out := l.NewLut([]*Signal{a}, []bool{false, true})
	l.MarkExternalOutput(out)

	_, warnings := ConstProp(l)
	assert.True(t, len(warnings) > 0)
}

func Test_ConstProp_OverdefOnConflictingRows(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	l.MarkExternalInput(a)

	out := l.NewLut([]*Signal{a}, []bool{false, true})
	l.MarkExternalOutput(out)

	changed, _ := ConstProp(l)
	assert.False(t, changed)

	var found *Lut

	for _, lut := range l.luts {
		if lut.Output == out {
			found = lut
		}
	}

	if found == nil {
		t.Fatalf("expected LUT to remain since its input is overdef")
	}

	assert.Equal(t, 1, len(found.Inputs))
}

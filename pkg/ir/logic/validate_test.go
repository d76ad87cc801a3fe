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

func Test_Validate_EmptyIsClean(t *testing.T) {
	l := New()
	_, err := l.Validate(ValidateFlags{})
	assert.Equal(t, nil, err)
}

func Test_Validate_FailsWithOpenScope(t *testing.T) {
	l := New()
	l.OpenScope()

	_, err := l.Validate(ValidateFlags{})
	if _, ok := err.(*BuilderStateError); !ok {
		t.Fatalf("expected *BuilderStateError, got %v", err)
	}
}

func Test_Validate_DetectsCombinationalCycle(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	b := l.NewSignal("b")

	l.PushLut(&Lut{Output: a, Inputs: []*Signal{b}, Table: []bool{true, false}})
	l.PushLut(&Lut{Output: b, Inputs: []*Signal{a}, Table: []bool{true, false}})

	_, err := l.Validate(ValidateFlags{})

	se, ok := err.(*StructuralError)
	if !ok {
		t.Fatalf("expected *StructuralError, got %v", err)
	}

	assert.Equal(t, "cycle", se.Kind)
}

func Test_Validate_FfBreaksCycle(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	l.PushFf(&Ff{Output: a, Input: a, Init: false})

	_, err := l.Validate(ValidateFlags{})
	assert.Equal(t, nil, err)
}

func Test_Validate_DetectsMultiDriver(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	b := l.NewSignal("b")

	l.PushLut(&Lut{Output: a, Inputs: []*Signal{b}, Table: []bool{true, false}})
	l.PushLut(&Lut{Output: a, Inputs: []*Signal{b}, Table: []bool{false, true}})

	_, err := l.Validate(ValidateFlags{})

	se, ok := err.(*StructuralError)
	if !ok {
		t.Fatalf("expected *StructuralError, got %v", err)
	}

	assert.Equal(t, "multi-driver", se.Kind)
}

func Test_Validate_DetectsDanglingReference(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	ghost := &Signal{Id: 999}

	l.PushLut(&Lut{Output: a, Inputs: []*Signal{ghost}, Table: []bool{true, false}})

	_, err := l.Validate(ValidateFlags{})

	se, ok := err.(*StructuralError)
	if !ok {
		t.Fatalf("expected *StructuralError, got %v", err)
	}

	assert.Equal(t, "dangling-reference", se.Kind)
}

func Test_Validate_DetectsTableLengthMismatch(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	b := l.NewSignal("b")

	l.PushLut(&Lut{Output: a, Inputs: []*Signal{b}, Table: []bool{true, false, true}})

	_, err := l.Validate(ValidateFlags{})

	se, ok := err.(*StructuralError)
	if !ok {
		t.Fatalf("expected *StructuralError, got %v", err)
	}

	assert.Equal(t, "table-length", se.Kind)
}

func Test_Validate_WarnsUndrivenWhenFlagged(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	b := l.NewSignal("b")

	l.PushLut(&Lut{Output: a, Inputs: []*Signal{b}, Table: []bool{true, false}})
	l.MarkExternalOutput(a)

	warnings, err := l.Validate(ValidateFlags{WarnUndriven: true})
	assert.Equal(t, nil, err)
	assert.True(t, len(warnings) > 0)
}

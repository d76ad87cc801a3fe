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

func Test_DCE_RemovesUnreferencedRegister(t *testing.T) {
	l := New()

	live := l.NewFf(nil, false)
	liveNot := l.NewLut([]*Signal{live}, []bool{true, false})
	l.ffs[0].Input = liveNot
	l.MarkExternalOutput(live)

	dead := l.NewFf(nil, true)
	deadNot := l.NewLut([]*Signal{dead}, []bool{true, false})
	l.ffs[1].Input = deadNot

	changed := DCE(l)

	assert.True(t, changed)
	assert.Equal(t, 1, len(l.ffs))
	assert.Equal(t, 1, len(l.luts))
	assert.Equal(t, live, l.ffs[0].Output)
}

func Test_DCE_NoopWhenEverythingLive(t *testing.T) {
	l := New()
	a := l.NewSignal("a")
	out := l.NewLut([]*Signal{a}, []bool{true, false})
	l.MarkExternalInput(a)
	l.MarkExternalOutput(out)

	changed := DCE(l)
	assert.False(t, changed)
	assert.Equal(t, 1, len(l.luts))
}

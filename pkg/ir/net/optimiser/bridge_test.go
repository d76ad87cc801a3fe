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
package optimiser

import (
	"testing"

	"github.com/karelpeeters/tcpu-synth/pkg/ir/net"
	"github.com/karelpeeters/tcpu-synth/pkg/util/assert"
)

func Test_CoalesceBridges_RemovesBridgeAndRewritesPorts(t *testing.T) {
	n := net.New()

	a := n.NewWire("a")
	b := n.NewWire("b")
	n.AddBridge(a, b)
	n.Resistor(n.Vdd, b)

	rewrites := CoalesceBridges(n)

	assert.True(t, rewrites > 0)

	for _, c := range n.Components() {
		assert.Equal(t, (*net.Bridge)(nil), c.Bridge)
	}

	canonical := a
	if b.Id < a.Id {
		canonical = b
	}

	for _, c := range n.Components() {
		if c.Resistor != nil && c.Resistor.A == n.Vdd {
			assert.Equal(t, canonical, c.Resistor.B)
		}
	}
}

func Test_CoalesceBridges_NoBridgesIsNoop(t *testing.T) {
	n := net.New()
	a := n.NewWire("a")
	n.Resistor(n.Vdd, a)

	rewrites := CoalesceBridges(n)
	assert.Equal(t, 0, rewrites)
}

func Test_Optimize_ComponentCountMonotonicity(t *testing.T) {
	n := net.New()
	a := n.NewWire("a")
	b := n.NewWire("b")
	n.AddBridge(a, b)
	n.Resistor(n.Vdd, a)
	n.Resistor(n.Vdd, b)

	before := len(n.Components())
	Optimize(n)
	after := len(n.Components())

	assert.True(t, after <= before)
}

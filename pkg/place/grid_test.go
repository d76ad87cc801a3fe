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
package place

import (
	"testing"

	"github.com/karelpeeters/tcpu-synth/pkg/ir/net"
	"github.com/karelpeeters/tcpu-synth/pkg/util/assert"
)

func buildStressNetlist() *net.Netlist {
	n := net.New()

	prev := n.Vdd

	for i := 0; i < 22; i++ {
		w := n.NewWire("")
		n.Resistor(prev, w)
		prev = w
	}

	return n
}

func Test_Grid_InitialPlacementSatisfiesInvariants(t *testing.T) {
	n := buildStressNetlist()
	g := New(n)

	assert.Equal(t, nil, g.ValidateInvariants())
	assert.Equal(t, g.RecomputeTotalCost(), g.TotalCost())
}

func Test_Grid_GlobalWiresExcludedFromIndex(t *testing.T) {
	n := net.New()
	n.Resistor(n.Vdd, n.Gnd)

	g := New(n)
	assert.Equal(t, 0, len(g.wireIndex))
}

func Test_Anneal_NeverIncreasesCostUnderGreedyDescent(t *testing.T) {
	n := buildStressNetlist()
	g := New(n)

	initial := g.TotalCost()

	Anneal(g, DefaultConfig(500, 42))

	assert.True(t, g.TotalCost() <= initial)
	assert.Equal(t, nil, g.ValidateInvariants())
	assert.Equal(t, g.RecomputeTotalCost(), g.TotalCost())
}

func Test_Anneal_DeterministicGivenSeed(t *testing.T) {
	n1 := buildStressNetlist()
	g1 := New(n1)
	Anneal(g1, DefaultConfig(200, 7))

	n2 := buildStressNetlist()
	g2 := New(n2)
	Anneal(g2, DefaultConfig(200, 7))

	assert.Equal(t, g1.TotalCost(), g2.TotalCost())
}

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

// Package optimiser implements netlist-level optimization passes, run to a
// fixed point by Optimize. Currently the only pass is bridge coalescing
// (§4.5): a Bridge(a,b) component induces an equivalence between a and b,
// and every equivalence class collapses to its lowest-id wire.
package optimiser

import (
	log "github.com/sirupsen/logrus"

	"github.com/karelpeeters/tcpu-synth/pkg/ir/net"
)

// Optimize runs netlist passes to a fixed point and returns the total
// number of rewrites performed.
func Optimize(n *net.Netlist) int {
	total := 0

	for {
		rewrites := CoalesceBridges(n)
		total += rewrites

		if rewrites == 0 {
			break
		}
	}

	return total
}

// CoalesceBridges removes every Bridge component, unions its two wires, and
// rewrites every remaining component's ports to refer to each equivalence
// class's canonical (lowest-id) wire. It returns the number of port
// rewrites performed (not counting the removed bridges themselves).
func CoalesceBridges(n *net.Netlist) int {
	parent := make(map[*net.Wire]*net.Wire)

	var find func(w *net.Wire) *net.Wire
	find = func(w *net.Wire) *net.Wire {
		p, ok := parent[w]
		if !ok {
			return w
		}

		root := find(p)
		parent[w] = root

		return root
	}

	union := func(a, b *net.Wire) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}

		if ra.Id < rb.Id {
			parent[rb] = ra
		} else {
			parent[ra] = rb
		}
	}

	var bridges []*net.Bridge

	for _, c := range n.Components() {
		if c.Bridge != nil {
			bridges = append(bridges, c.Bridge)
			union(c.Bridge.A, c.Bridge.B)
		}
	}

	if len(bridges) == 0 {
		return 0
	}

	remaining := make([]*net.Component, 0, len(n.Components())-len(bridges))
	rewrites := 0

	for _, c := range n.Components() {
		if c.Bridge != nil {
			continue
		}

		for _, p := range c.Ports() {
			if canonical := find(p.Wire); canonical != p.Wire {
				c.ReplaceWire(p.Wire, canonical)
				rewrites++
			}
		}

		remaining = append(remaining, c)
	}

	wires := make([]*net.Wire, 0, len(n.Wires()))

	for _, w := range n.Wires() {
		canonical := find(w)
		if canonical != w {
			for name := range w.DebugNames {
				canonical.AddDebugName(name)
			}

			continue
		}

		wires = append(wires, w)
	}

	n.SetWires(wires)
	n.SetComponents(remaining)

	log.Debugf("net optimiser: coalesced %d bridge(s), %d port rewrite(s)", len(bridges), rewrites)

	return rewrites
}

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
package net

import (
	"fmt"
	"strings"
)

// Netlist owns an ordered list of Wires and Components, plus the three
// reserved global wires every Netlist carries: VDD, GND and CLK. Global
// wires are referenced by components (pull-ups tie to VDD, pulldowns to GND,
// FF gating to CLK) but are excluded from placement, since they conceptually
// connect everywhere.
type Netlist struct {
	wires      []*Wire
	components []*Component

	Vdd, Gnd, Clk *Wire

	nextID uint
}

// New constructs an empty netlist with its three global wires pre-allocated.
func New() *Netlist {
	n := &Netlist{}

	n.Vdd = n.NewWire("vdd")
	n.Gnd = n.NewWire("gnd")
	n.Clk = n.NewWire("clk")

	return n
}

// IsGlobal reports whether w is one of this netlist's three reserved global
// wires.
func (n *Netlist) IsGlobal(w *Wire) bool {
	return w == n.Vdd || w == n.Gnd || w == n.Clk
}

// NewWire allocates and registers a fresh wire, optionally carrying a debug
// name.
func (n *Netlist) NewWire(debugName string) *Wire {
	w := &Wire{Id: n.nextID}
	n.nextID++
	w.AddDebugName(debugName)
	n.wires = append(n.wires, w)

	return w
}

// PushComponent appends an already-constructed Component.
func (n *Netlist) PushComponent(c *Component) { n.components = append(n.components, c) }

// Resistor allocates and registers a resistor between a and b.
func (n *Netlist) Resistor(a, b *Wire) *Component {
	c := &Component{Resistor: &Resistor{A: a, B: b}}
	n.PushComponent(c)

	return c
}

// NMOS allocates and registers an NMOS transistor.
func (n *Netlist) NMOS(gate, up, down *Wire) *Component {
	c := &Component{NMOS: &Transistor{Gate: gate, Up: up, Down: down}}
	n.PushComponent(c)

	return c
}

// PMOS allocates and registers a PMOS transistor.
func (n *Netlist) PMOS(gate, up, down *Wire) *Component {
	c := &Component{PMOS: &Transistor{Gate: gate, Up: up, Down: down}}
	n.PushComponent(c)

	return c
}

// AddBridge allocates and registers a bridge between a and b.
func (n *Netlist) AddBridge(a, b *Wire) *Component {
	c := &Component{Bridge: &Bridge{A: a, B: b}}
	n.PushComponent(c)

	return c
}

// Led allocates and registers an LED indicator.
func (n *Netlist) Led(high, low *Wire) *Component {
	c := &Component{Led: &Led{High: high, Low: low}}
	n.PushComponent(c)

	return c
}

// Wires returns a read-only snapshot slice of every wire currently
// registered, including the three global wires.
func (n *Netlist) Wires() []*Wire { return n.wires }

// Components returns a read-only snapshot slice of every component
// currently registered.
func (n *Netlist) Components() []*Component { return n.components }

// SetWires replaces the Wire array wholesale; used by the bridge-coalescing
// pass after filtering out consumed wires.
func (n *Netlist) SetWires(wires []*Wire) { n.wires = wires }

// SetComponents replaces the Component array wholesale; used by the
// bridge-coalescing pass after removing Bridge components.
func (n *Netlist) SetComponents(components []*Component) { n.components = components }

// ComponentCounts tallies components by variant kind, supplementing the
// core pipeline with the cost reporting the original's print_cost produced:
// a per-kind breakdown alongside the raw total.
func (n *Netlist) ComponentCounts() map[string]int {
	counts := make(map[string]int)
	for _, c := range n.components {
		counts[c.Kind()]++
	}

	return counts
}

// CostTable assigns a relative fabrication cost to each component kind
// (as returned by Component.Kind), matching the original's
// component_cost dict passed into print_cost.
type CostTable map[string]int

// DefaultCostTable weights every component kind equally at 1, giving a
// plain component count when no finer cost model is supplied.
var DefaultCostTable = CostTable{
	"Resistor": 1,
	"NMOS":     1,
	"PMOS":     1,
	"Bridge":   1,
	"Led":      1,
}

// Cost sums ComponentCounts weighted by table, falling back to 1 per
// component for any kind the table does not mention.
func (n *Netlist) Cost(table CostTable) int {
	total := 0

	for kind, count := range n.ComponentCounts() {
		weight, ok := table[kind]
		if !ok {
			weight = 1
		}

		total += weight * count
	}

	return total
}

// Validate checks that every wire referenced by any component's ports
// belongs to this netlist (global wires count as belonging).
func (n *Netlist) Validate() error {
	known := make(map[*Wire]bool, len(n.wires))
	for _, w := range n.wires {
		known[w] = true
	}

	for _, c := range n.components {
		for _, p := range c.Ports() {
			if p.Wire == nil {
				return &StructuralError{Kind: "dangling-reference", Message: "component port has nil wire", Component: c}
			}

			if !known[p.Wire] {
				return &StructuralError{
					Kind:      "dangling-reference",
					Message:   fmt.Sprintf("component %s references unregistered wire", c.Kind()),
					Component: c,
					Wire:      p.Wire,
				}
			}
		}
	}

	return nil
}

func (n *Netlist) String() string {
	var sb strings.Builder

	sb.WriteString("Netlist(\n  wires: [\n")

	for _, w := range n.wires {
		sb.WriteString("    " + w.String() + "\n")
	}

	sb.WriteString("  ],\n  components: [\n")

	for _, c := range n.components {
		sb.WriteString("    " + c.String() + "\n")
	}

	sb.WriteString("  ],\n)")

	return sb.String()
}

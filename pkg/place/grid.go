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

// Package place implements the placement engine: a grid-based simulated
// annealer minimising total half-perimeter wirelength (HPWL) over a
// netlist's components (pkg/ir/net).
package place

import (
	"math"

	"github.com/karelpeeters/tcpu-synth/pkg/ir/net"
)

// empty is the sentinel grid-cell value meaning "no component occupies this
// cell".
const empty = -1

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Grid holds a square arrangement of component indices, side
// ⌈√n⌉ for n components, plus the derived wire↔component indices and cached
// per-wire/total cost that the annealer (anneal.go) mutates incrementally.
type Grid struct {
	netlist *net.Netlist
	side    int

	cells []int // side*side, empty or a component index
	pos   []Point

	wireIndex      map[*net.Wire][]int // wire -> component indices, globals excluded
	componentWires [][]*net.Wire       // component index -> non-global wires it touches

	wireCost  map[*net.Wire]int
	totalCost int
}

// New lays out every component of n at a distinct cell of a
// ⌈√len(components)⌉-side grid, in the given order, and computes the
// initial wire↔component indices and cost cache. Callers wanting a randomized
// initial placement should shuffle components before calling New.
func New(n *net.Netlist) *Grid {
	components := n.Components()
	count := len(components)
	side := int(math.Ceil(math.Sqrt(float64(count))))

	if side == 0 {
		side = 1
	}

	g := &Grid{
		netlist: n,
		side:    side,
		cells:   make([]int, side*side),
		pos:     make([]Point, count),
	}

	for i := range g.cells {
		g.cells[i] = empty
	}

	for i := range components {
		g.pos[i] = Point{X: i % side, Y: i / side}
		g.cells[i] = i
	}

	g.buildWireIndex(components)
	g.initCost()

	return g
}

// Side returns the grid's side length.
func (g *Grid) Side() int { return g.side }

// ComponentCount returns the number of components placed on this grid.
func (g *Grid) ComponentCount() int { return len(g.pos) }

// At returns the component index occupying (x, y), or empty (-1) if vacant.
func (g *Grid) At(x, y int) int { return g.cells[y*g.side+x] }

// PositionOf returns the grid coordinate of component index i.
func (g *Grid) PositionOf(i int) Point { return g.pos[i] }

// TotalCost returns the current cached total cost.
func (g *Grid) TotalCost() int { return g.totalCost }

func (g *Grid) buildWireIndex(components []*net.Component) {
	g.wireIndex = make(map[*net.Wire][]int)
	g.componentWires = make([][]*net.Wire, len(components))

	for i, c := range components {
		seen := make(map[*net.Wire]bool)

		for _, p := range c.Ports() {
			if g.netlist.IsGlobal(p.Wire) || seen[p.Wire] {
				continue
			}

			seen[p.Wire] = true
			g.componentWires[i] = append(g.componentWires[i], p.Wire)
			g.wireIndex[p.Wire] = append(g.wireIndex[p.Wire], i)
		}
	}
}

func (g *Grid) initCost() {
	g.wireCost = make(map[*net.Wire]int, len(g.wireIndex))
	g.totalCost = 0

	for w := range g.wireIndex {
		c := g.computeWireCost(w)
		g.wireCost[w] = c
		g.totalCost += c
	}
}

// computeWireCost recomputes w's HPWL cost from scratch against the current
// grid positions, independent of any cache.
func (g *Grid) computeWireCost(w *net.Wire) int {
	indices := g.wireIndex[w]
	if len(indices) < 2 {
		return 0
	}

	minX, minY := math.MaxInt32, math.MaxInt32
	maxX, maxY := math.MinInt32, math.MinInt32

	for _, i := range indices {
		p := g.pos[i]

		if p.X < minX {
			minX = p.X
		}

		if p.X > maxX {
			maxX = p.X
		}

		if p.Y < minY {
			minY = p.Y
		}

		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return (maxX - minX) + (maxY - minY)
}

// RecomputeTotalCost sums every wire's cost from scratch, ignoring the
// cache; used by invariant validation (§4.7) to check the cache against a
// fresh computation.
func (g *Grid) RecomputeTotalCost() int {
	total := 0
	for w := range g.wireIndex {
		total += g.computeWireCost(w)
	}

	return total
}

// ValidateInvariants checks the three invariants listed in §4.7: grid and
// position table agree, cached per-wire costs sum to the cached total, and
// every per-wire cost matches a fresh recomputation.
func (g *Grid) ValidateInvariants() error {
	for i, p := range g.pos {
		if g.At(p.X, p.Y) != i {
			return &InvariantError{Message: "component position disagrees with grid cell"}
		}
	}

	sum := 0

	for w, cost := range g.wireCost {
		sum += cost

		if fresh := g.computeWireCost(w); fresh != cost {
			return &InvariantError{Message: "cached per-wire cost disagrees with fresh computation"}
		}
	}

	if sum != g.totalCost {
		return &InvariantError{Message: "sum of cached per-wire costs disagrees with cached total"}
	}

	return nil
}

// InvariantError reports a broken placement invariant, normally only
// reachable via a bug in Grid's incremental cost maintenance.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string { return "place: " + e.Message }

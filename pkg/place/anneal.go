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
	"math"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/karelpeeters/tcpu-synth/pkg/ir/net"
)

// Config controls one annealing run. Temperature governs acceptance of
// worsening swaps; zero makes the run a strict greedy descent, which is an
// acceptable configuration (§4.7) and the default used by tests.
type Config struct {
	Iterations  int
	Temperature float64
	Rand        *rand.Rand
}

// DefaultConfig returns a deterministic, greedy-descent configuration seeded
// from seed.
func DefaultConfig(iterations int, seed int64) Config {
	return Config{
		Iterations:  iterations,
		Temperature: 0,
		Rand:        rand.New(rand.NewSource(seed)),
	}
}

// Anneal runs cfg.Iterations proposal/accept-or-reject rounds against g,
// mutating it in place, and returns the number of accepted swaps.
func Anneal(g *Grid, cfg Config) int {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}

	accepted := 0

	for iter := 0; iter < cfg.Iterations; iter++ {
		if g.propose(cfg.Rand, cfg.Temperature) {
			accepted++
		}
	}

	log.Debugf("anneal: %d/%d swaps accepted, final cost %d", accepted, cfg.Iterations, g.totalCost)

	return accepted
}

// propose picks two cells uniformly at random, swaps them, and either
// commits or undoes the swap per the acceptance rule.
func (g *Grid) propose(r *rand.Rand, temperature float64) bool {
	n := len(g.cells)
	if n < 2 {
		return false
	}

	ai := r.Intn(n)
	bi := ai

	for bi == ai {
		bi = r.Intn(n)
	}

	touched := g.swap(ai, bi)

	delta := 0

	for _, w := range touched {
		fresh := g.computeWireCost(w)
		delta += fresh - g.wireCost[w]
	}

	newTotal := g.totalCost + delta

	if g.accept(delta, newTotal, temperature, r) {
		for _, w := range touched {
			g.wireCost[w] = g.computeWireCost(w)
		}

		g.totalCost = newTotal

		return true
	}

	g.swap(ai, bi) // undo

	return false
}

func (g *Grid) accept(delta, newTotal int, temperature float64, r *rand.Rand) bool {
	if delta < 0 {
		return true
	}

	if temperature <= 0 {
		return false
	}

	return r.Float64() < math.Exp(-float64(delta)/temperature)
}

// swap exchanges the occupants of cell indices ai and bi (either may be
// empty), updating g.cells and g.pos, and returns the set of non-global
// wires touched by either previous occupant.
func (g *Grid) swap(ai, bi int) []*net.Wire {
	ca, cb := g.cells[ai], g.cells[bi]

	pa := Point{X: ai % g.side, Y: ai / g.side}
	pb := Point{X: bi % g.side, Y: bi / g.side}

	g.cells[ai], g.cells[bi] = cb, ca

	if ca != empty {
		g.pos[ca] = pb
	}

	if cb != empty {
		g.pos[cb] = pa
	}

	seen := make(map[*net.Wire]bool)

	var touched []*net.Wire

	addWiresOf := func(component int) {
		if component == empty {
			return
		}

		for _, w := range g.componentWires[component] {
			if !seen[w] {
				seen[w] = true

				touched = append(touched, w)
			}
		}
	}

	addWiresOf(ca)
	addWiresOf(cb)

	return touched
}

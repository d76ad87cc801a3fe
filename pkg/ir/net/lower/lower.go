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

// Package lower implements the one-pass, zero-optimization code generator
// from the logic IR (pkg/ir/logic) to the transistor-level netlist IR
// (pkg/ir/net): every Signal becomes a Wire, every Lut a pulldown network,
// every Ff a master-slave D flip-flop. Any cleanup (bridge coalescing,
// common-subexpression sharing) is left to pkg/ir/net/optimiser.
package lower

import (
	log "github.com/sirupsen/logrus"

	"github.com/karelpeeters/tcpu-synth/pkg/ir/logic"
	"github.com/karelpeeters/tcpu-synth/pkg/ir/net"
)

// Option configures a non-default lowering behaviour; the zero value of
// options is the generic, always-pulldown-network lowering.
type Option func(*options)

type options struct {
	nandOrLowering bool
}

// WithNandOrLowering enables the alternate, directly-synthesized lowering
// path for 2-input AND/OR LUTs: a single NAND (resp. NOR) transistor stack
// gated directly by the two inputs, followed by one inverter, rather than
// always routing the LUT through the generic pulldown network. This mirrors
// the original's hand-specialized gate_and/gate_or (gate_not(gate_nand(...)))
// and produces fewer transistors than the generic path, which additionally
// needs cached inverses of both inputs for most table rows.
func WithNandOrLowering() Option {
	return func(o *options) { o.nandOrLowering = true }
}

// Lower translates l into a fresh Netlist. l must not have an open builder
// scope (callers should call Optimize or at least Validate first).
func Lower(l *logic.List, opts ...Option) *net.Netlist {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := net.New()
	lw := &lowerer{logic: l, net: n, wires: make(map[*logic.Signal]*net.Wire), opts: o}

	for _, s := range l.Signals() {
		lw.wireFor(s)
	}

	for _, lut := range l.Luts() {
		lw.lowerLut(lut)
	}

	for _, ff := range l.Ffs() {
		lw.lowerFf(ff)
	}

	log.Debugf("lower: %d signals -> %d wires, %d components",
		len(l.Signals()), len(n.Wires()), len(n.Components()))

	return n
}

type lowerer struct {
	logic *logic.List
	net   *net.Netlist
	opts  options

	wires    map[*logic.Signal]*net.Wire
	inverses map[*net.Wire]*net.Wire
}

// wireFor returns the Wire corresponding to s, creating it (carrying over
// debug names) on first reference.
func (lw *lowerer) wireFor(s *logic.Signal) *net.Wire {
	if w, ok := lw.wires[s]; ok {
		return w
	}

	w := lw.net.NewWire("")
	for name := range s.DebugNames {
		w.AddDebugName(name)
	}

	if s.SpecialName != "" {
		w.AddDebugName(s.SpecialName)
	}

	lw.wires[s] = w

	return w
}

// invertedOf returns a wire carrying the logical inverse of w, lazily
// building and caching one inverter (a PMOS pull-up plus NMOS pull-down
// gated on w) per distinct w.
func (lw *lowerer) invertedOf(w *net.Wire) *net.Wire {
	if lw.inverses == nil {
		lw.inverses = make(map[*net.Wire]*net.Wire)
	}

	if inv, ok := lw.inverses[w]; ok {
		return inv
	}

	inv := lw.net.NewWire("")
	lw.net.PMOS(w, lw.net.Vdd, inv)
	lw.net.NMOS(w, inv, lw.net.Gnd)
	lw.inverses[w] = inv

	return inv
}

// lowerLut emits output's pulldown network: a shared pull-up resistor to
// VDD, plus one series NMOS stack to GND per false table row.
func (lw *lowerer) lowerLut(lut *logic.Lut) {
	output := lw.wireFor(lut.Output)

	if len(lut.Inputs) == 0 {
		if lut.Table[0] {
			lw.net.Resistor(lw.net.Vdd, output)
		} else {
			lw.net.AddBridge(output, lw.net.Gnd)
		}

		return
	}

	inputWires := make([]*net.Wire, len(lut.Inputs))
	for i, s := range lut.Inputs {
		inputWires[i] = lw.wireFor(s)
	}

	if lw.opts.nandOrLowering && len(inputWires) == 2 {
		switch {
		case isAnd2Table(lut.Table):
			lw.lowerAnd2ViaNand(output, inputWires[0], inputWires[1])
			return
		case isOr2Table(lut.Table):
			lw.lowerOr2ViaNor(output, inputWires[0], inputWires[1])
			return
		}
	}

	lw.net.Resistor(lw.net.Vdd, output)

	for row, bit := range lut.Table {
		if bit {
			continue
		}

		lw.pulldownStack(output, inputWires, row)
	}
}

// pulldownStack emits the k-transistor series stack for one false table row:
// at level i, the gate is inputWires[i] when bit i of row is set, or its
// lazily-cached inverse otherwise. Levels are chained node-to-node between
// output and GND.
func (lw *lowerer) pulldownStack(output *net.Wire, inputWires []*net.Wire, row int) {
	up := output

	for i, in := range inputWires {
		var gate *net.Wire
		if row&(1<<uint(i)) != 0 {
			gate = in
		} else {
			gate = lw.invertedOf(in)
		}

		down := lw.net.Gnd
		if i != len(inputWires)-1 {
			down = lw.net.NewWire("")
		}

		lw.net.NMOS(gate, up, down)

		up = down
	}
}

// isAnd2Table reports whether table is the truth table of a 2-input AND
// (false on every row except 11).
func isAnd2Table(table []bool) bool {
	return len(table) == 4 && !table[0] && !table[1] && !table[2] && table[3]
}

// isOr2Table reports whether table is the truth table of a 2-input OR (true
// on every row except 00).
func isOr2Table(table []bool) bool {
	return len(table) == 4 && !table[0] && table[1] && table[2] && table[3]
}

// lowerAnd2ViaNand synthesizes a 2-input AND LUT as NOT(NAND(a, b)): a
// single series NMOS stack gated directly by a and b (no cached inverses
// needed, since NAND's only false row is 11) pulls the internal NAND node
// low, then one inverter produces the AND output.
func (lw *lowerer) lowerAnd2ViaNand(output, a, b *net.Wire) {
	nand := lw.net.NewWire("")
	mid := lw.net.NewWire("")

	lw.net.Resistor(lw.net.Vdd, nand)
	lw.net.NMOS(a, nand, mid)
	lw.net.NMOS(b, mid, lw.net.Gnd)

	lw.net.PMOS(nand, lw.net.Vdd, output)
	lw.net.NMOS(nand, output, lw.net.Gnd)
}

// lowerOr2ViaNor synthesizes a 2-input OR LUT as NOT(NOR(a, b)): two
// parallel NMOS gated directly by a and b pull the internal NOR node low
// whenever either input is high, then one inverter produces the OR output.
func (lw *lowerer) lowerOr2ViaNor(output, a, b *net.Wire) {
	nor := lw.net.NewWire("")

	lw.net.Resistor(lw.net.Vdd, nor)
	lw.net.NMOS(a, nor, lw.net.Gnd)
	lw.net.NMOS(b, nor, lw.net.Gnd)

	lw.net.PMOS(nor, lw.net.Vdd, output)
	lw.net.NMOS(nor, output, lw.net.Gnd)
}

// lowerFf emits output's master-slave D flip-flop: a master latch pulled
// active by NMOS gated on CLK, feeding a slave latch pulled active by NMOS
// gated on the inverse of CLK.
func (lw *lowerer) lowerFf(ff *logic.Ff) {
	output := lw.wireFor(ff.Output)
	d := lw.wireFor(ff.Input)
	notD := lw.invertedOf(d)
	notClk := lw.invertedOf(lw.net.Clk)

	masterQ := lw.net.NewWire("")
	lw.latch(masterQ, d, notD, lw.net.Clk)
	lw.latch(output, masterQ, lw.invertedOf(masterQ), notClk)
}

// latch emits one cross-coupled-inverter D latch: two pull-up resistors and
// two NMOS to the shared pull node, transparent (pull active) while write is
// high. The two write transistors admitting d/notD sit directly between
// the latch's cross-coupled nodes and pull, same as the cross-coupled pair;
// the single write-gated NMOS is the only path from pull to GND, so every
// write transistor is dead (disconnected from GND) whenever write is low.
func (lw *lowerer) latch(q *net.Wire, d, notD, write *net.Wire) {
	notQ := lw.net.NewWire("")
	pull := lw.net.NewWire("")

	lw.net.Resistor(lw.net.Vdd, q)
	lw.net.Resistor(lw.net.Vdd, notQ)
	lw.net.NMOS(notQ, q, pull)
	lw.net.NMOS(q, notQ, pull)

	lw.net.NMOS(d, notQ, pull)
	lw.net.NMOS(notD, q, pull)

	lw.net.NMOS(write, pull, lw.net.Gnd)
}

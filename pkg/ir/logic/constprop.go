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

import log "github.com/sirupsen/logrus"

// ConstProp runs the three-valued constant-propagation dataflow to a fixed
// point, then rewrites LUTs to drop constant inputs and replaces FFs whose
// output is fully determined with constant LUTs.  It reports whether it
// changed anything, plus a warning for every signal left at Undef (dead code
// the surrounding passes may later remove).
func ConstProp(l *List) (bool, []Warning) {
	state := solveLattice(l)

	changed := false
	rewritten := 0
	var warnings []Warning

	newLuts := make([]*Lut, 0, len(l.luts))

	for _, lut := range l.luts {
		newInputs, newTable, hasConst := restrictTable(lut.Inputs, lut.Table, state)
		if hasConst {
			changed = true
			rewritten++
			lut.Inputs = newInputs
			lut.Table = newTable
		}

		newLuts = append(newLuts, lut)
	}

	l.setLuts(newLuts)

	newFfs := make([]*Ff, 0, len(l.ffs))

	for _, ff := range l.ffs {
		if v, ok := state[ff.Output].IsDef(); ok {
			// Replace with a zero-input constant LUT driving the same
			// output signal.
			l.PushLut(&Lut{Output: ff.Output, Inputs: nil, Table: []bool{v}})
			changed = true
			rewritten++

			continue
		}

		newFfs = append(newFfs, ff)
	}

	l.setFfs(newFfs)

	for _, s := range l.signals {
		if state[s].IsUndef() {
			warnings = append(warnings, Warning{Kind: "undef", Message: "signal never resolves to a constant or overdef", Signal: s})
		}
	}

	if changed {
		log.Debugf("const-prop: rewrote %d LUT(s)/FF(s)", rewritten)
	}

	return changed, warnings
}

// solveLattice runs the worklist dataflow solver to a fixed point and
// returns the final lattice value of every signal.
func solveLattice(l *List) map[*Signal]Lattice {
	state := make(map[*Signal]Lattice, len(l.signals))

	for _, s := range l.signals {
		state[s] = Undef
	}

	for s := range l.externalInputs {
		state[s] = Overdef
	}

	for _, ff := range l.ffs {
		state[ff.Output] = Def(ff.Init)
	}

	ud := BuildUseDef(l)

	queued := make(map[any]bool, len(l.luts)+len(l.ffs))

	var queue []any

	push := func(c any) {
		if !queued[c] {
			queued[c] = true
			queue = append(queue, c)
		}
	}

	for _, lut := range l.luts {
		push(lut)
	}

	for _, ff := range l.ffs {
		push(ff)
	}

	enqueueUsers := func(s *Signal) {
		for _, u := range ud.Users[s] {
			push(u)
		}
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		queued[c] = false

		switch v := c.(type) {
		case *Ff:
			next := state[v.Input]
			merged := state[v.Output].Merge(next)

			if merged != state[v.Output] {
				state[v.Output] = merged
				enqueueUsers(v.Output)
			}
		case *Lut:
			result := evalLatticeLut(v, state)
			merged := state[v.Output].Merge(result)

			if merged != state[v.Output] {
				state[v.Output] = merged
				enqueueUsers(v.Output)
			}
		}
	}

	return state
}

// evalLatticeLut evaluates a LUT's table over the current lattice state of
// its inputs, merging the output of every table row compatible with that
// state, short-circuiting to Overdef once two distinct values are seen.
func evalLatticeLut(lut *Lut, state map[*Signal]Lattice) Lattice {
	k := len(lut.Inputs)
	result := Undef

	for row := 0; row < len(lut.Table); row++ {
		compatible := true

		for i := 0; i < k; i++ {
			bit := (row>>uint(i))&1 != 0
			if !state[lut.Inputs[i]].CanBe(bit) {
				compatible = false
				break
			}
		}

		if !compatible {
			continue
		}

		result = result.Merge(Def(lut.Table[row]))
		if result.IsOverdef() {
			return Overdef
		}
	}

	return result
}

// restrictTable computes the LUT restriction over non-constant inputs given
// the lattice state. It returns hasConst=false if no input is constant
// (table and inputs returned unchanged).
func restrictTable(inputs []*Signal, table []bool, state map[*Signal]Lattice) ([]*Signal, []bool, bool) {
	k := len(inputs)
	constBit := make([]int, k)
	keep := make([]int, 0, k)

	for i, s := range inputs {
		if v, ok := state[s].IsDef(); ok {
			if v {
				constBit[i] = 1
			} else {
				constBit[i] = 0
			}
		} else {
			constBit[i] = -1
			keep = append(keep, i)
		}
	}

	if len(keep) == k {
		return inputs, table, false
	}

	newK := len(keep)
	newTable := make([]bool, 1<<uint(newK))

	for idx := range newTable {
		full := 0

		for bitPos, inputPos := range keep {
			if idx&(1<<uint(bitPos)) != 0 {
				full |= 1 << uint(inputPos)
			}
		}

		for i := 0; i < k; i++ {
			if constBit[i] == 1 {
				full |= 1 << uint(i)
			}
		}

		newTable[idx] = table[full]
	}

	newInputs := make([]*Signal, newK)
	for bitPos, inputPos := range keep {
		newInputs[bitPos] = inputs[inputPos]
	}

	return newInputs, newTable, true
}

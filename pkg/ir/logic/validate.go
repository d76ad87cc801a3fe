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

import "github.com/karelpeeters/tcpu-synth/pkg/util/collection/set"

// ValidateFlags selects which non-fatal warnings Validate additionally
// reports.  Structural invariants (§3 of the design) are always checked
// regardless of these flags.
type ValidateFlags struct {
	WarnUnused       bool
	WarnUndriven     bool
	WarnDisconnected bool
}

// Validate checks every structural invariant of this logic list: every
// referenced signal exists and belongs to this list, signal ids are unique,
// every signal has at most one driver, every LUT's table matches its input
// count, external inputs are not separately driven, and the combinational
// subgraph (LUT inputs to outputs, ignoring FFs) is acyclic.  It fails fast
// with a *StructuralError on the first violation found, or a
// *BuilderStateError if a builder scope is still open.  Otherwise, it
// returns the warnings requested by flags.
func (l *List) Validate(flags ValidateFlags) ([]Warning, error) {
	if l.openScopes != 0 {
		return nil, &BuilderStateError{OpenScopes: l.openScopes}
	}

	all := make(map[*Signal]bool, len(l.signals))
	ids := make(map[uint]*Signal, len(l.signals))

	for _, s := range l.signals {
		all[s] = true

		if other, ok := ids[s.Id]; ok && other != s {
			return nil, &StructuralError{Kind: "duplicate-id", Message: "signal id reused", Signal: s}
		}

		ids[s.Id] = s
	}

	driver := make(map[*Signal]string, len(l.signals))
	used := make(map[*Signal]bool, len(l.signals))

	markDriver := func(s *Signal, by string) error {
		if !all[s] {
			return &StructuralError{Kind: "dangling-reference", Message: "driven signal does not belong to this list", Signal: s}
		}

		if prev, ok := driver[s]; ok {
			return &StructuralError{Kind: "multi-driver", Message: "signal driven by both " + prev + " and " + by, Signal: s}
		}

		driver[s] = by

		return nil
	}

	for s := range l.externalInputs {
		if err := markDriver(s, "external-input"); err != nil {
			return nil, err
		}
	}

	for _, lut := range l.luts {
		if len(lut.Table) != 1<<uint(len(lut.Inputs)) {
			return nil, &StructuralError{
				Kind:    "table-length",
				Message: "LUT table length does not match 2^inputs",
				Signal:  lut.Output,
			}
		}

		if err := markDriver(lut.Output, "LUT"); err != nil {
			return nil, err
		}

		for _, in := range lut.Inputs {
			if !all[in] {
				return nil, &StructuralError{Kind: "dangling-reference", Message: "LUT input does not belong to this list", Signal: in}
			}

			used[in] = true
		}
	}

	for _, ff := range l.ffs {
		if err := markDriver(ff.Output, "FF"); err != nil {
			return nil, err
		}

		if !all[ff.Input] {
			return nil, &StructuralError{Kind: "dangling-reference", Message: "FF input does not belong to this list", Signal: ff.Input}
		}

		used[ff.Input] = true
	}

	for s := range l.externalOutputs {
		if !all[s] {
			return nil, &StructuralError{Kind: "dangling-reference", Message: "external output does not belong to this list", Signal: s}
		}

		used[s] = true
	}

	if err := checkAcyclic(l); err != nil {
		return nil, err
	}

	var warnings []Warning

	if flags.WarnUndriven {
		for s := range used {
			if _, ok := driver[s]; !ok {
				warnings = append(warnings, Warning{Kind: "undriven", Message: "signal is used but never driven", Signal: s})
			}
		}
	}

	if flags.WarnUnused {
		for s := range driver {
			if !used[s] {
				warnings = append(warnings, Warning{Kind: "unused", Message: "signal is driven but never used", Signal: s})
			}
		}
	}

	if flags.WarnDisconnected {
		for s := range all {
			if _, isDriven := driver[s]; !isDriven && !used[s] {
				warnings = append(warnings, Warning{Kind: "disconnected", Message: "signal is not connected to anything", Signal: s})
			}
		}
	}

	return warnings, nil
}

// checkAcyclic detects combinational cycles among LUTs (FFs break cycles and
// do not participate).  On failure it reports a StructuralError carrying a
// sample cycle path.
func checkAcyclic(l *List) error {
	lutByOutput := make(map[*Signal]*Lut, len(l.luts))
	for _, lut := range l.luts {
		lutByOutput[lut.Output] = lut
	}

	// visited holds the ids of signals whose subgraph has been fully
	// explored (the "black" DFS colour); gray holds those currently on the
	// recursion stack. Membership in visited only ever grows, which is
	// exactly what set.SortedSet is for; gray needs removal on backtrack,
	// so it stays a plain map.
	visited := set.NewSortedSet[uint]()
	gray := make(map[*Signal]bool, len(l.signals))
	var stack []*Signal

	var visit func(s *Signal) error

	visit = func(s *Signal) error {
		if visited.Contains(s.Id) {
			return nil
		}

		if gray[s] {
			// Found a cycle; build the sample path from the first repeated
			// occurrence of s in the current stack.
			path := []*Signal{s}

			for i := len(stack) - 1; i >= 0; i-- {
				path = append(path, stack[i])
				if stack[i] == s {
					break
				}
			}

			return &StructuralError{Kind: "cycle", Message: "combinational cycle detected", Signal: s, Path: path}
		}

		lut, ok := lutByOutput[s]
		if !ok {
			visited.Insert(s.Id)
			return nil
		}

		gray[s] = true
		stack = append(stack, s)

		for _, in := range lut.Inputs {
			if err := visit(in); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		gray[s] = false
		visited.Insert(s.Id)

		return nil
	}

	for _, lut := range l.luts {
		if err := visit(lut.Output); err != nil {
			return err
		}
	}

	return nil
}

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

// Peephole applies small local rewrites that don't need a global dataflow
// solve. Currently this recognises only the identity buffer (a one-input LUT
// with table [false, true]), removing it and merging its output with its
// input; future simplifications plug into the same pass.
func Peephole(l *List) bool {
	changed := false
	toDelete := make(map[*Lut]bool)

	for _, lut := range l.luts {
		if isIdentityBuffer(lut) {
			l.MergeSignals(lut.Inputs[0], lut.Output)
			toDelete[lut] = true
			changed = true
		}
	}

	if changed {
		newLuts := make([]*Lut, 0, len(l.luts)-len(toDelete))

		for _, lut := range l.luts {
			if !toDelete[lut] {
				newLuts = append(newLuts, lut)
			}
		}

		l.setLuts(newLuts)

		log.Debugf("peephole: removed %d identity buffer(s)", len(toDelete))
	}

	return changed
}

func isIdentityBuffer(lut *Lut) bool {
	return len(lut.Inputs) == 1 && len(lut.Table) == 2 && !lut.Table[0] && lut.Table[1]
}

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

import (
	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"
)

// DCE removes every LUT, FF and Signal not reachable (backward, through
// LUT/FF definitions) from the set of external inputs and outputs.  It
// reports whether the total component count decreased.
func DCE(l *List) bool {
	ud := BuildUseDef(l)

	live := bitset.New(uint(len(l.signals)))
	var worklist []*Signal

	mark := func(s *Signal) {
		if !live.Test(s.Id) {
			live.Set(s.Id)
			worklist = append(worklist, s)
		}
	}

	for s := range l.externalInputs {
		mark(s)
	}

	for s := range l.externalOutputs {
		mark(s)
	}

	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if lut, ok := ud.DefLut[s]; ok {
			for _, in := range lut.Inputs {
				mark(in)
			}
		}

		if ff, ok := ud.DefFf[s]; ok {
			mark(ff.Input)
		}
	}

	before := len(l.signals) + len(l.luts) + len(l.ffs)

	newLuts := make([]*Lut, 0, len(l.luts))

	for _, lut := range l.luts {
		if live.Test(lut.Output.Id) {
			newLuts = append(newLuts, lut)
		}
	}

	l.setLuts(newLuts)

	newFfs := make([]*Ff, 0, len(l.ffs))

	for _, ff := range l.ffs {
		if live.Test(ff.Output.Id) {
			newFfs = append(newFfs, ff)
		}
	}

	l.setFfs(newFfs)

	newSignals := make([]*Signal, 0, len(l.signals))

	for _, s := range l.signals {
		if live.Test(s.Id) {
			newSignals = append(newSignals, s)
		}
	}

	l.setSignals(newSignals)

	after := len(l.signals) + len(l.luts) + len(l.ffs)
	changed := after < before

	if changed {
		log.Debugf("dce: removed %d dead component(s)", before-after)
	}

	return changed
}

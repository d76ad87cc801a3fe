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
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Dedup identifies LUTs sharing the same ordered input tuple and truth
// table, and FFs sharing the same input signal and initial value.  Within
// each equivalence class, the first-encountered member is kept; every other
// member's output is merged into the kept member's output and the
// duplicate is deleted. Running Dedup twice in a row is a no-op the second
// time (confluent): once every class has been collapsed to one member,
// there is nothing left to merge.
func Dedup(l *List) bool {
	changed := false

	seenLuts := make(map[string]*Lut, len(l.luts))
	dupLuts := make(map[*Lut]bool)

	for _, lut := range l.luts {
		key := lutKey(lut)
		if rep, ok := seenLuts[key]; ok {
			l.MergeSignals(rep.Output, lut.Output)
			dupLuts[lut] = true
			changed = true
		} else {
			seenLuts[key] = lut
		}
	}

	if len(dupLuts) > 0 {
		newLuts := make([]*Lut, 0, len(l.luts)-len(dupLuts))

		for _, lut := range l.luts {
			if !dupLuts[lut] {
				newLuts = append(newLuts, lut)
			}
		}

		l.setLuts(newLuts)
	}

	seenFfs := make(map[string]*Ff, len(l.ffs))
	dupFfs := make(map[*Ff]bool)

	for _, ff := range l.ffs {
		key := ffKey(ff)
		if rep, ok := seenFfs[key]; ok {
			l.MergeSignals(rep.Output, ff.Output)
			dupFfs[ff] = true
			changed = true
		} else {
			seenFfs[key] = ff
		}
	}

	if len(dupFfs) > 0 {
		newFfs := make([]*Ff, 0, len(l.ffs)-len(dupFfs))

		for _, ff := range l.ffs {
			if !dupFfs[ff] {
				newFfs = append(newFfs, ff)
			}
		}

		l.setFfs(newFfs)
	}

	if changed {
		log.Debugf("dedup: merged %d duplicate LUT(s), %d duplicate FF(s)", len(dupLuts), len(dupFfs))
	}

	return changed
}

func lutKey(lut *Lut) string {
	var sb strings.Builder

	for _, in := range lut.Inputs {
		fmt.Fprintf(&sb, "%p,", in)
	}

	sb.WriteByte(';')

	for _, b := range lut.Table {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

func ffKey(ff *Ff) string {
	return fmt.Sprintf("%p;%v", ff.Input, ff.Init)
}

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

	"github.com/karelpeeters/tcpu-synth/pkg/util/collection/iter"
)

// List owns every Signal, Lut and Ff in one logic design, plus the sets of
// signals marked as external inputs/outputs.  Signals, LUTs and FFs are
// held in flat arrays, but LUTs and FFs refer to their signals by pointer,
// so FF loops are direct pointer cycles between objects rather than integer
// indices.  Every pass operates on these arrays and rebuilds any derived
// use/def indices at its start, rather than maintaining them incrementally.
type List struct {
	signals []*Signal
	luts    []*Lut
	ffs     []*Ff

	externalInputs  map[*Signal]bool
	externalOutputs map[*Signal]bool

	nextID     uint
	openScopes uint
}

// New constructs an empty logic list.
func New() *List {
	return &List{
		externalInputs:  make(map[*Signal]bool),
		externalOutputs: make(map[*Signal]bool),
	}
}

// NewSignal allocates and registers a fresh signal, optionally carrying a
// debug name.
func (l *List) NewSignal(debugName string) *Signal {
	s := &Signal{Id: l.nextID}
	l.nextID++
	s.AddDebugName(debugName)
	l.signals = append(l.signals, s)

	return s
}

// MarkExternalInput marks the given signals as external inputs.
func (l *List) MarkExternalInput(signals ...*Signal) {
	for _, s := range signals {
		l.externalInputs[s] = true
	}
}

// MarkExternalOutput marks the given signals as external outputs.
func (l *List) MarkExternalOutput(signals ...*Signal) {
	for _, s := range signals {
		l.externalOutputs[s] = true
	}
}

// IsExternalInput returns whether s is marked as an external input.
func (l *List) IsExternalInput(s *Signal) bool { return l.externalInputs[s] }

// IsExternalOutput returns whether s is marked as an external output.
func (l *List) IsExternalOutput(s *Signal) bool { return l.externalOutputs[s] }

// PushLut appends an already-constructed Lut.
func (l *List) PushLut(lut *Lut) { l.luts = append(l.luts, lut) }

// NewLut allocates a fresh output signal, constructs a Lut driving it from
// the given inputs and table, and registers it.
func (l *List) NewLut(inputs []*Signal, table []bool) *Signal {
	if len(table) != 1<<uint(len(inputs)) {
		panic(fmt.Sprintf("logic: table has %d entries, expected %d for %d inputs",
			len(table), 1<<uint(len(inputs)), len(inputs)))
	}

	output := l.NewSignal("")
	l.PushLut(&Lut{Output: output, Inputs: inputs, Table: table})

	return output
}

// PushFf appends an already-constructed Ff.
func (l *List) PushFf(ff *Ff) { l.ffs = append(l.ffs, ff) }

// NewFf allocates a fresh output signal and registers a flip-flop sampling
// input on every clock edge, starting at init.
func (l *List) NewFf(input *Signal, init bool) *Signal {
	output := l.NewSignal("")
	l.PushFf(&Ff{Output: output, Input: input, Init: init})

	return output
}

// OpenScope increments the active-builder counter.  Validate and Optimize
// refuse to run while any scope is open.
func (l *List) OpenScope() { l.openScopes++ }

// CloseScope decrements the active-builder counter.
func (l *List) CloseScope() {
	if l.openScopes == 0 {
		panic("logic: CloseScope called with no open scope")
	}

	l.openScopes--
}

// OpenScopes returns the number of currently-open builder scopes.
func (l *List) OpenScopes() uint { return l.openScopes }

// Signals returns the list's own slice of every signal currently registered
// (not a copy; MergeSignals filters it in place).  Deleted signals do not
// appear.
func (l *List) Signals() []*Signal { return l.signals }

// Luts returns a read-only snapshot slice of every Lut currently registered.
func (l *List) Luts() []*Lut { return l.luts }

// Ffs returns a read-only snapshot slice of every Ff currently registered.
func (l *List) Ffs() []*Ff { return l.ffs }

// ExternalInputs returns a read-only snapshot slice of the external input
// signals, in unspecified order.
func (l *List) ExternalInputs() []*Signal { return mapKeys(l.externalInputs) }

// ExternalOutputs returns a read-only snapshot slice of the external output
// signals, in unspecified order.
func (l *List) ExternalOutputs() []*Signal { return mapKeys(l.externalOutputs) }

// SignalIterator returns an iterator over this list's signals.
func (l *List) SignalIterator() iter.Iterator[*Signal] { return iter.NewArrayIterator(l.signals) }

// LutIterator returns an iterator over this list's LUTs.
func (l *List) LutIterator() iter.Iterator[*Lut] { return iter.NewArrayIterator(l.luts) }

// FfIterator returns an iterator over this list's FFs.
func (l *List) FfIterator() iter.Iterator[*Ff] { return iter.NewArrayIterator(l.ffs) }

func mapKeys(m map[*Signal]bool) []*Signal {
	out := make([]*Signal, 0, len(m))
	for s := range m {
		out = append(out, s)
	}

	return out
}

// setLuts replaces the Lut array wholesale; used by optimization passes
// after filtering.
func (l *List) setLuts(luts []*Lut) { l.luts = luts }

// setFfs replaces the Ff array wholesale; used by optimization passes after
// filtering.
func (l *List) setFfs(ffs []*Ff) { l.ffs = ffs }

// setSignals replaces the Signal array wholesale; used by DCE after
// filtering.
func (l *List) setSignals(signals []*Signal) { l.signals = signals }

// deleteExternal removes s from both external marker sets (used when a
// merged-away signal happened to be externally marked).
func (l *List) deleteExternal(s *Signal) {
	delete(l.externalInputs, s)
	delete(l.externalOutputs, s)
}

// replaceExternal rewrites any external marker referring to old so that it
// refers to new instead, unioning flags if new was already marked.
func (l *List) replaceExternal(old, new *Signal) {
	if l.externalInputs[old] {
		delete(l.externalInputs, old)
		l.externalInputs[new] = true
	}

	if l.externalOutputs[old] {
		delete(l.externalOutputs, old)
		l.externalOutputs[new] = true
	}
}

func (l *List) String() string {
	var sb strings.Builder

	sb.WriteString("List(\n  signals: [\n")

	for _, s := range l.signals {
		sb.WriteString("    " + s.String())

		if l.externalInputs[s] {
			sb.WriteString(" in")
		}

		if l.externalOutputs[s] {
			sb.WriteString(" out")
		}

		sb.WriteString("\n")
	}

	sb.WriteString("  ],\n  luts: [\n")

	for _, lut := range l.luts {
		sb.WriteString("    " + lut.String() + "\n")
	}

	sb.WriteString("  ],\n  ffs: [\n")

	for _, ff := range l.ffs {
		sb.WriteString("    " + ff.String() + "\n")
	}

	sb.WriteString("  ],\n)")

	return sb.String()
}

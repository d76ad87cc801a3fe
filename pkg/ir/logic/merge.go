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

// MergeSignals unifies two signal identities, rewriting every LUT input, FF
// input and external marker referring to other so that it refers to
// canonical instead.  Debug names are unioned onto canonical, and other is
// removed from the list.  Merging a signal into itself is a no-op (merge is
// idempotent).  The caller is responsible for ensuring the merge does not
// introduce a second driver for canonical (e.g. by choosing which side is
// canonical so that at most one of the two was ever driven).
func (l *List) MergeSignals(canonical, other *Signal) {
	if canonical == other {
		return
	}

	replace := func(s *Signal) *Signal {
		if s == other {
			return canonical
		}

		return s
	}

	for _, lut := range l.luts {
		for i, in := range lut.Inputs {
			lut.Inputs[i] = replace(in)
		}

		lut.Output = replace(lut.Output)
	}

	for _, ff := range l.ffs {
		ff.Input = replace(ff.Input)
		ff.Output = replace(ff.Output)
	}

	l.replaceExternal(other, canonical)

	for name := range other.DebugNames {
		canonical.AddDebugName(name)
	}

	l.removeSignal(other)
}

// removeSignal deletes a signal from the Signals array.  The caller must
// have already rewritten every reference to it.
func (l *List) removeSignal(s *Signal) {
	l.deleteExternal(s)

	out := l.signals[:0]

	for _, o := range l.signals {
		if o != s {
			out = append(out, o)
		}
	}

	l.signals = out
}

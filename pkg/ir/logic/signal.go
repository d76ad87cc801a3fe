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

// Package logic implements the logic-level intermediate representation: 1-bit
// Signals driven by combinational LUTs or sequential FFs, the structural
// validator, and the optimization passes which run over it to a fixed point.
package logic

import "fmt"

// Signal is a uniquely identified 1-bit net within a single LogicList.
// Identity is by pointer, never by value: two Signals with the same Id
// belonging to different LogicLists are unrelated, and a LogicList's
// invariants require every Signal it references to be one of its own.
type Signal struct {
	// Id is this signal's stable identity within its owning LogicList.  Ids
	// are not necessarily contiguous after optimization passes delete
	// signals.
	Id uint
	// DebugNames is an unordered set of human-readable names attached to this
	// signal over its lifetime (e.g. by signal merging).
	DebugNames map[string]bool
	// SpecialName, when set, reserves this signal for an external-facing
	// label (e.g. "clk") that must survive lowering unchanged.
	SpecialName string
}

// HasDebugName returns true if name has been attached to this signal.
func (s *Signal) HasDebugName(name string) bool {
	return s.DebugNames[name]
}

// AddDebugName attaches name to this signal's debug name set.
func (s *Signal) AddDebugName(name string) {
	if name == "" {
		return
	}

	if s.DebugNames == nil {
		s.DebugNames = make(map[string]bool)
	}

	s.DebugNames[name] = true
}

func (s *Signal) String() string {
	if s.SpecialName != "" {
		return fmt.Sprintf("%q", s.SpecialName)
	}

	for name := range s.DebugNames {
		return fmt.Sprintf("Signal(%d,%q)", s.Id, name)
	}

	return fmt.Sprintf("Signal(%d)", s.Id)
}

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

// Package net implements the netlist-level intermediate representation: the
// physical, transistor-oriented output of lowering the logic IR (see
// pkg/ir/logic). A Wire is a uniquely identified physical net; a Component
// is a polymorphic circuit element connecting some ordered set of wires.
package net

import "fmt"

// Wire is a uniquely identified physical net. Attributes mirror
// logic.Signal: an id and an accumulating set of debug names (unioned by
// bridge coalescing rather than replaced).
type Wire struct {
	Id         uint
	DebugNames map[string]bool
}

// AddDebugName attaches name to this wire's debug name set. Empty names are
// ignored, matching the logic-level Signal convention.
func (w *Wire) AddDebugName(name string) {
	if name == "" {
		return
	}

	if w.DebugNames == nil {
		w.DebugNames = make(map[string]bool)
	}

	w.DebugNames[name] = true
}

// HasDebugName reports whether name is attached to this wire.
func (w *Wire) HasDebugName(name string) bool { return w.DebugNames[name] }

func (w *Wire) String() string {
	if len(w.DebugNames) == 0 {
		return fmt.Sprintf("w%d", w.Id)
	}

	for name := range w.DebugNames {
		return fmt.Sprintf("w%d(%s)", w.Id, name)
	}

	return fmt.Sprintf("w%d", w.Id)
}

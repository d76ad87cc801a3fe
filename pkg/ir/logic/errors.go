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

import "fmt"

// StructuralError reports a violation of one of the LogicList's structural
// invariants: a dangling reference, a duplicate signal id, multiple drivers
// for one signal, a table/input length mismatch, or a combinational cycle.
type StructuralError struct {
	// Kind is a short machine-readable category, e.g. "multi-driver",
	// "dangling-reference", "duplicate-id", "table-length", "cycle".
	Kind string
	// Message is a human-readable description of the violation.
	Message string
	// Signal, when non-nil, identifies the offending signal.
	Signal *Signal
	// Path, when non-empty, is a sample cycle path (for Kind == "cycle").
	Path []*Signal
}

func (e *StructuralError) Error() string {
	if e.Signal != nil {
		return fmt.Sprintf("structural error (%s): %s [%s]", e.Kind, e.Message, e.Signal)
	}

	return fmt.Sprintf("structural error (%s): %s", e.Kind, e.Message)
}

// BuilderStateError reports that Validate or Optimize was invoked while a
// builder scope was still open on the LogicList.
type BuilderStateError struct {
	OpenScopes uint
}

func (e *BuilderStateError) Error() string {
	return fmt.Sprintf("builder state error: %d scope(s) still open", e.OpenScopes)
}

// Warning is a non-fatal diagnostic: an UNDEF signal surviving
// const-propagation, or a signal found driven-but-unused,
// used-but-undriven, or wholly disconnected by Validate.
type Warning struct {
	Kind    string
	Message string
	Signal  *Signal
}

func (w Warning) String() string {
	return fmt.Sprintf("warning (%s): %s [%s]", w.Kind, w.Message, w.Signal)
}

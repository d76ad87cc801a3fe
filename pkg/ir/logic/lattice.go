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

// kind distinguishes the three shapes a Lattice value can take.
type kind uint8

const (
	kindUndef kind = iota
	kindDef
	kindOverdef
)

// Lattice is the three-valued constant-propagation domain: UNDEF (bottom,
// "not yet known to be anything"), Def(v) ("known to always be v"), and
// OVERDEF (top, "known to vary"). Undef is the merge identity; merging two
// equal Def values keeps that value; merging distinct Def values, or
// anything with Overdef, yields Overdef.
type Lattice struct {
	kind  kind
	value bool
}

// Undef is the bottom lattice element.
var Undef = Lattice{kind: kindUndef}

// Overdef is the top lattice element.
var Overdef = Lattice{kind: kindOverdef}

// Def constructs the lattice element asserting a signal is always v.
func Def(v bool) Lattice {
	return Lattice{kind: kindDef, value: v}
}

// IsUndef returns whether this is the bottom element.
func (l Lattice) IsUndef() bool { return l.kind == kindUndef }

// IsOverdef returns whether this is the top element.
func (l Lattice) IsOverdef() bool { return l.kind == kindOverdef }

// IsDef returns whether this is a concrete constant, and if so its value.
func (l Lattice) IsDef() (bool, bool) { return l.value, l.kind == kindDef }

// CanBe returns whether this lattice element admits the possibility of v:
// true for Overdef, true for Def(v) when it matches, false otherwise.
func (l Lattice) CanBe(v bool) bool {
	switch l.kind {
	case kindOverdef:
		return true
	case kindDef:
		return l.value == v
	default:
		return false
	}
}

// Merge computes the least upper bound of a and b in the lattice.
func (l Lattice) Merge(other Lattice) Lattice {
	if l.IsUndef() {
		return other
	}

	if other.IsUndef() {
		return l
	}

	if l.IsOverdef() || other.IsOverdef() {
		return Overdef
	}
	// Both Def.
	if l.value == other.value {
		return l
	}

	return Overdef
}

func (l Lattice) String() string {
	switch l.kind {
	case kindOverdef:
		return "overdef"
	case kindDef:
		return fmt.Sprintf("def(%v)", l.value)
	default:
		return "undef"
	}
}

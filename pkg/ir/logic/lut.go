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

// Lut is a combinational lookup table: its output is a pure function of its
// ordered inputs, given by Table.  Table indexing is little-endian: the
// entry at index sum(b_i * 2^i) gives the output when input i is b_i.  An
// empty Inputs list with a Table of length 1 is a constant.
type Lut struct {
	// Output is the signal this LUT drives.  A LUT is the sole driver of its
	// output signal.
	Output *Signal
	// Inputs lists, in order, the signals this LUT reads from.
	Inputs []*Signal
	// Table has exactly 2^len(Inputs) entries.
	Table []bool
}

// Eval evaluates this LUT's table given a concrete assignment to each input,
// in the same order as Inputs.
func (l *Lut) Eval(inputs []bool) bool {
	if len(inputs) != len(l.Inputs) {
		panic(fmt.Sprintf("lut: expected %d inputs, got %d", len(l.Inputs), len(inputs)))
	}

	index := 0
	for i, v := range inputs {
		if v {
			index |= 1 << uint(i)
		}
	}

	return l.Table[index]
}

// IsConstant returns true (and the constant value) if this LUT has no
// inputs.
func (l *Lut) IsConstant() (bool, bool) {
	if len(l.Inputs) == 0 {
		return l.Table[0], true
	}

	return false, false
}

func (l *Lut) String() string {
	return fmt.Sprintf("%s = LUT(%v, %v)", l.Output, l.Inputs, l.Table)
}

// Ff is an edge-triggered D flip-flop: on every clock edge, Output takes the
// previous value of Input.  On the first cycle, Output takes Init.
type Ff struct {
	// Output is the signal this flip-flop drives.
	Output *Signal
	// Input is the signal sampled on each clock edge.
	Input *Signal
	// Init is the value Output holds before the first clock edge.
	Init bool
}

func (f *Ff) String() string {
	return fmt.Sprintf("%s = FF(%s, init=%v)", f.Output, f.Input, f.Init)
}

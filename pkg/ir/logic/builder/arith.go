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
package builder

// AddTrunc returns a+y truncated to the width of a (a ripple-carry adder; y
// is zero-extended or truncated to line up with a's width). carryIn seeds
// the low-order carry, letting callers chain adders together (e.g. for a
// wider add-with-carry composed of narrower stages).
func (b *Builder) AddTrunc(a, y BitVec, carryIn Bit) BitVec {
	width := a.Width()
	sum := make([]Bit, width)
	carry := carryIn

	for i := 0; i < width; i++ {
		ai := a.Bit(i)
		yi := y.BitOrZero(b, i)

		sum[i] = b.Xor(ai, yi, carry)
		carry = b.Or(b.And(ai, yi), b.And(ai, carry), b.And(yi, carry))
	}

	return BitVec{bits: sum}
}

// Inc returns a+1 truncated to the width of a.
func (b *Builder) Inc(a BitVec) BitVec {
	return b.AddTrunc(a, BitVec{}, b.Const(true))
}

// NotVec returns the bitwise inverse of a.
func (b *Builder) NotVec(a BitVec) BitVec {
	out := make([]Bit, a.Width())
	for i := range out {
		out[i] = b.Not(a.Bit(i))
	}

	return BitVec{bits: out}
}

// ShiftLeftTrunc shifts x left by amount (a fixed, non-negative shift known
// at build time), truncating to x's original width and filling vacated low
// bits with zero.
func (b *Builder) ShiftLeftTrunc(x BitVec, amount int) BitVec {
	width := x.Width()
	out := make([]Bit, width)

	for i := 0; i < width; i++ {
		if i-amount >= 0 {
			out[i] = x.Bit(i - amount)
		} else {
			out[i] = b.Const(false)
		}
	}

	return BitVec{bits: out}
}

// BarrelShiftLeft shifts x left by a run-time amount given as a bit vector,
// truncating to x's original width and zero-filling vacated low bits. It is
// built as a log-depth cascade of Mux stages: stage k conditionally shifts
// by 1<<k depending on bit k of amount.
func (b *Builder) BarrelShiftLeft(x BitVec, amount BitVec) BitVec {
	cur := x

	for stage := 0; stage < amount.Width(); stage++ {
		shifted := b.ShiftLeftTrunc(cur, 1<<uint(stage))
		sel := amount.Bit(stage)

		next := make([]Bit, cur.Width())
		for i := range next {
			next[i] = b.Mux(sel, shifted.Bit(i), cur.Bit(i))
		}

		cur = BitVec{bits: next}
	}

	return cur
}

// Equal returns whether a and b hold the same value (zero-extended to the
// wider of the two widths).
func (b *Builder) Equal(a, y BitVec) Bit {
	width := a.Width()
	if y.Width() > width {
		width = y.Width()
	}

	eq := b.Const(true)

	for i := 0; i < width; i++ {
		ai := a.BitOrZero(b, i)
		yi := y.BitOrZero(b, i)
		eq = b.And(eq, b.Not(b.Xor(ai, yi)))
	}

	return eq
}

// ConnectVec stages one deferred connection per bit of a and c, which must
// have equal width.
func (b *Builder) ConnectVec(a, c BitVec) {
	if a.Width() != c.Width() {
		panic("builder: ConnectVec requires equal-width vectors")
	}

	for i := 0; i < a.Width(); i++ {
		b.Connect(a.Bit(i).Signal, c.Bit(i).Signal)
	}
}

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

// Package builder is the external builder surface (§4.1/§6.1 of the
// design): the API a front-end circuit description calls to construct a
// logic.List.  It guarantees that, once its outermost scope closes, the
// resulting list satisfies every structural invariant logic.List checks.
//
// Gate construction is exposed through explicit typed wrappers (Bit,
// BitVec) and an explicit Connect call, rather than operator
// overloading: Go has none to borrow, so deferred connections are staged
// with Builder.Connect and resolved by logic.List.MergeSignals when the
// outermost scope closes.
package builder

import (
	"fmt"

	"github.com/karelpeeters/tcpu-synth/pkg/ir/logic"
)

// Bit wraps a single logic.Signal with the builder's fluent gate API.
type Bit struct {
	Signal *logic.Signal
}

// connection is one staged deferred connection between two equally-typed
// signals, resolved at outermost scope close.
type connection struct {
	a, b *logic.Signal
}

// Builder is the stateful handle front-end circuit code uses to populate a
// logic.List. It tracks its own nesting of open scopes so that deferred
// connections are resolved exactly once, when the outermost scope closes.
type Builder struct {
	List    *logic.List
	pending []connection
}

// New opens the outermost builder scope over list and returns a Builder.
// The caller must call CloseScope exactly once when done constructing the
// circuit.
func New(list *logic.List) *Builder {
	list.OpenScope()
	return &Builder{List: list}
}

// OpenScope opens a nested builder scope, e.g. for a sub-circuit helper that
// wants its own lifetime tracked independently of its caller's.
func (b *Builder) OpenScope() { b.List.OpenScope() }

// CloseScope closes a scope. When this closes the outermost scope (the
// active-scope counter returns to zero), every connection staged via
// Connect (by this builder or any nested scope) is resolved by choosing,
// for each pair, the signal with the lower Id as canonical and merging the
// other into it, following any transitive chains first.
func (b *Builder) CloseScope() {
	b.List.CloseScope()

	if b.List.OpenScopes() == 0 {
		b.flush()
	}
}

// NewSignal allocates a fresh, undriven signal.
func (b *Builder) NewSignal(debugName string) *logic.Signal {
	return b.List.NewSignal(debugName)
}

// NewLut allocates a fresh signal driven by a LUT over inputs/table.
func (b *Builder) NewLut(inputs []*logic.Signal, table []bool) *logic.Signal {
	return b.List.NewLut(inputs, table)
}

// NewFf allocates a fresh signal driven by a flip-flop sampling input,
// starting at init.
func (b *Builder) NewFf(input *logic.Signal, init bool) *logic.Signal {
	return b.List.NewFf(input, init)
}

// MarkExternalInput marks signals as external inputs.
func (b *Builder) MarkExternalInput(signals ...*logic.Signal) {
	b.List.MarkExternalInput(signals...)
}

// MarkExternalOutput marks signals as external outputs.
func (b *Builder) MarkExternalOutput(signals ...*logic.Signal) {
	b.List.MarkExternalOutput(signals...)
}

// Connect stages a deferred connection between two equally-typed signals,
// to be resolved by signal merge when the outermost scope closes. Deferred
// connections may not cross type-width boundaries; callers should stage one
// connection per bit (see Builder.ConnectVec) rather than mixing widths.
func (b *Builder) Connect(a, c *logic.Signal) {
	b.pending = append(b.pending, connection{a, c})
}

func (b *Builder) flush() {
	better := make(map[*logic.Signal]*logic.Signal, len(b.pending))

	resolve := func(s *logic.Signal) *logic.Signal {
		for {
			next, ok := better[s]
			if !ok {
				return s
			}

			s = next
		}
	}

	for _, c := range b.pending {
		a := resolve(c.a)
		bb := resolve(c.b)

		if a == bb {
			continue
		}

		if a.Id < bb.Id {
			better[bb] = a
		} else {
			better[a] = bb
		}
	}

	b.pending = nil

	for worse := range better {
		canonical := resolve(worse)
		b.List.MergeSignals(canonical, worse)
	}
}

func (s Bit) String() string {
	if s.Signal == nil {
		return "Bit(<nil>)"
	}

	return fmt.Sprintf("Bit(%s)", s.Signal)
}

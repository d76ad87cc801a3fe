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

// Package sim implements the logic simulator test oracle (§4.6 of the
// design): given a frozen logic.List and a per-step external-input
// schedule, it produces the full signal history. It is the primary
// correctness tool used to check that optimization preserves observable
// behaviour.
package sim

import (
	"fmt"

	"github.com/karelpeeters/tcpu-synth/pkg/ir/logic"
)

// Value is a three-valued simulation result: Zero, One, or Unknown (the
// high-impedance value ⊥ a driverless signal resolves to).
type Value uint8

const (
	Zero Value = iota
	One
	Unknown
)

func (v Value) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "⊥"
	}
}

// Bool converts a concrete (non-Unknown) Value to bool; it panics if v is
// Unknown.
func (v Value) Bool() bool {
	switch v {
	case Zero:
		return false
	case One:
		return true
	default:
		panic("sim: Bool called on Unknown value")
	}
}

func fromBool(b bool) Value {
	if b {
		return One
	}

	return Zero
}

// Schedule assigns a concrete value to every external input for each of N
// steps; Schedule[t][input] gives the value at step t. Inputs absent from a
// step's map default to Zero, matching the default test schedule used
// throughout §8.
type Schedule []map[*logic.Signal]bool

// ConstSchedule builds an N-step schedule holding every external input of l
// at value for every step (the all-zero default schedule when value is
// false).
func ConstSchedule(l *logic.List, steps int, value bool) Schedule {
	sched := make(Schedule, steps)

	for t := range sched {
		m := make(map[*logic.Signal]bool, len(l.ExternalInputs()))
		for _, s := range l.ExternalInputs() {
			m[s] = value
		}

		sched[t] = m
	}

	return sched
}

// Step is one step's full signal-value assignment.
type Step map[*logic.Signal]Value

// Run simulates l for len(schedule) steps and returns the full per-step
// signal history. It returns a *PassAbort if it observes a combinational
// cycle, which validate (§4.2) should already have rejected.
func Run(l *logic.List, schedule Schedule) (history []Step, err error) {
	defer func() {
		if r := recover(); r != nil {
			if abort, ok := r.(*PassAbort); ok {
				err = abort
				return
			}

			panic(r)
		}
	}()

	defLut := make(map[*logic.Signal]*logic.Lut, len(l.Luts()))
	for _, lut := range l.Luts() {
		defLut[lut.Output] = lut
	}

	history = make([]Step, len(schedule))
	prevFfOutputs := make(map[*logic.Signal]Value, len(l.Ffs()))

	for _, ff := range l.Ffs() {
		prevFfOutputs[ff.Output] = fromBool(ff.Init)
	}

	for t, inputs := range schedule {
		step := make(Step, len(l.Signals()))

		for _, s := range l.ExternalInputs() {
			step[s] = Zero
		}

		for s, v := range inputs {
			step[s] = fromBool(v)
		}

		for _, ff := range l.Ffs() {
			step[ff.Output] = prevFfOutputs[ff.Output]
		}

		ev := &evaluator{defLut: defLut, step: step, inFlight: make(map[*logic.Signal]bool)}

		for _, s := range l.Signals() {
			ev.eval(s)
		}

		history[t] = step

		nextFfOutputs := make(map[*logic.Signal]Value, len(l.Ffs()))

		for _, ff := range l.Ffs() {
			nextFfOutputs[ff.Output] = ev.eval(ff.Input)
		}

		prevFfOutputs = nextFfOutputs
	}

	return history, nil
}

// evaluator recursively resolves a signal's value within one step,
// memoizing into step and detecting the cycles that logic.Validate already
// rules out (a PassAbort if one slips through regardless).
type evaluator struct {
	defLut   map[*logic.Signal]*logic.Lut
	step     Step
	inFlight map[*logic.Signal]bool
}

func (ev *evaluator) eval(s *logic.Signal) Value {
	if v, ok := ev.step[s]; ok {
		return v
	}

	if ev.inFlight[s] {
		panic(&PassAbort{Message: fmt.Sprintf("simulator: combinational cycle through %s", s)})
	}

	ev.inFlight[s] = true
	defer delete(ev.inFlight, s)

	lut, ok := ev.defLut[s]
	if !ok {
		ev.step[s] = Unknown

		return Unknown
	}

	inputs := make([]bool, len(lut.Inputs))
	anyUnknown := false

	for i, in := range lut.Inputs {
		v := ev.eval(in)
		if v == Unknown {
			anyUnknown = true

			break
		}

		inputs[i] = v.Bool()
	}

	var result Value
	if anyUnknown {
		result = Unknown
	} else {
		result = fromBool(lut.Eval(inputs))
	}

	ev.step[s] = result

	return result
}

// PassAbort reports a deterministic contract violation inside a pass, e.g.
// the simulator observing a combinational cycle that validation should have
// already rejected.
type PassAbort struct {
	Message string
}

func (e *PassAbort) Error() string { return "sim: " + e.Message }

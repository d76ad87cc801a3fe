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

import log "github.com/sirupsen/logrus"

// OptimisationConfig controls which passes Optimize runs.  All default to
// enabled; this exists so tests and the CLI can isolate individual passes
// (e.g. to check property 2 of §8, which compares simulation before and
// after optimization).
type OptimisationConfig struct {
	ConstProp bool
	DCE       bool
	Dedup     bool
	Peephole  bool
}

// DefaultOptimisationConfig enables every pass.
var DefaultOptimisationConfig = OptimisationConfig{
	ConstProp: true,
	DCE:       true,
	Dedup:     true,
	Peephole:  true,
}

// Optimize runs the enabled passes to a fixed point: constant propagation,
// dead-code elimination, structural deduplication and peephole
// simplification, iterating until no pass reports a change.  A builder
// scope must not be open; Optimize returns a *BuilderStateError otherwise.
// It returns the accumulated warnings from every const-prop iteration.
func Optimize(l *List, cfg OptimisationConfig) ([]Warning, error) {
	if l.openScopes != 0 {
		return nil, &BuilderStateError{OpenScopes: l.openScopes}
	}

	var allWarnings []Warning

	for iteration := 1; ; iteration++ {
		changed := false

		if cfg.ConstProp {
			c, warnings := ConstProp(l)
			changed = changed || c
			allWarnings = append(allWarnings, warnings...)
		}

		if cfg.DCE {
			changed = DCE(l) || changed
		}

		if cfg.Dedup {
			changed = Dedup(l) || changed
		}

		if cfg.Peephole {
			changed = Peephole(l) || changed
		}

		log.Debugf("logic optimize: iteration %d, changed=%v, signals=%d luts=%d ffs=%d",
			iteration, changed, len(l.signals), len(l.luts), len(l.ffs))

		if !changed {
			break
		}
	}

	return allWarnings, nil
}

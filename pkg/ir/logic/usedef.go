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

// UseDef is a use/def index over a logic list, rebuilt at the start of each
// pass (rather than maintained incrementally across passes, since rebuilding
// is linear and keeping it consistent under deletion is not).
type UseDef struct {
	// DefLut maps a signal to the LUT driving it, if any.
	DefLut map[*Signal]*Lut
	// DefFf maps a signal to the FF driving it, if any.
	DefFf map[*Signal]*Ff
	// Users maps a signal to every LUT and FF that reads it as an input.
	Users map[*Signal][]any
}

// BuildUseDef computes a fresh use/def index for l.
func BuildUseDef(l *List) *UseDef {
	ud := &UseDef{
		DefLut: make(map[*Signal]*Lut, len(l.luts)),
		DefFf:  make(map[*Signal]*Ff, len(l.ffs)),
		Users:  make(map[*Signal][]any),
	}

	for _, lut := range l.luts {
		ud.DefLut[lut.Output] = lut

		for _, in := range lut.Inputs {
			ud.Users[in] = append(ud.Users[in], lut)
		}
	}

	for _, ff := range l.ffs {
		ud.DefFf[ff.Output] = ff
		ud.Users[ff.Input] = append(ud.Users[ff.Input], ff)
	}

	return ud
}

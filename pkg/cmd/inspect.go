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
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/karelpeeters/tcpu-synth/pkg/ir/logic"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] design",
	Short: "inspect a design's logic IR without lowering or placing it.",
	Long: `Build and validate a named design, reporting its signal/LUT/FF counts and
	 any non-fatal warnings, without lowering it to a netlist.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		d := FindDesign(args[0])

		warnings, err := d.List.Validate(logic.ValidateFlags{
			WarnUnused:       true,
			WarnUndriven:     true,
			WarnDisconnected: true,
		})
		if err != nil {
			color.Red("%s: %s", d.Name, err)
			os.Exit(1)
		}

		fmt.Printf("%s: %d signal(s), %d LUT(s), %d FF(s)\n",
			d.Name, len(d.List.Signals()), len(d.List.Luts()), len(d.List.Ffs()))

		for _, w := range warnings {
			color.Yellow("warning: %s", w.Message)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

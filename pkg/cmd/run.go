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
	"github.com/karelpeeters/tcpu-synth/pkg/ir/net"
	"github.com/karelpeeters/tcpu-synth/pkg/ir/net/lower"
	"github.com/karelpeeters/tcpu-synth/pkg/ir/net/optimiser"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] design",
	Short: "synthesize a named design through to a bridge-coalesced netlist.",
	Long: `Run the full front end on a named design: validate the logic IR, optimize it
	 to a fixed point, lower it to a transistor netlist, and coalesce bridges,
	 reporting the final netlist's component count, its cost, and a per-kind
	 component breakdown.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		d := FindDesign(args[0])

		if _, err := d.List.Validate(logic.ValidateFlags{}); err != nil {
			color.Red("%s: %s", d.Name, err)
			os.Exit(1)
		}

		n := synthesize(cmd, d.List)

		fmt.Printf("%s: %d component(s) (cost %d)\n", d.Name, len(n.Components()), n.Cost(net.DefaultCostTable))
		printComponentCounts(n.ComponentCounts())
	},
}

// synthesize runs logic.Optimize -> lower.Lower -> optimiser.Optimize,
// exiting with a coloured error report on the first failed stage.  It is
// shared by run and place so both subcommands lower identically.
func synthesize(cmd *cobra.Command, l *logic.List) *net.Netlist {
	if _, err := logic.Optimize(l, optimisationConfig(cmd)); err != nil {
		color.Red("optimize: %s", err)
		os.Exit(1)
	}

	if _, err := l.Validate(logic.ValidateFlags{}); err != nil {
		color.Red("post-optimize validate: %s", err)
		os.Exit(1)
	}

	n := lower.Lower(l)

	if err := n.Validate(); err != nil {
		color.Red("post-lower validate: %s", err)
		os.Exit(1)
	}

	rewrites := optimiser.Optimize(n)
	log.Debugf("bridge coalescing: %d rewrite(s)", rewrites)

	if err := n.Validate(); err != nil {
		color.Red("post-netlist-optimize validate: %s", err)
		os.Exit(1)
	}

	return n
}

func printComponentCounts(counts map[string]int) {
	for _, kind := range []string{"Resistor", "NMOS", "PMOS", "Bridge", "Led"} {
		if c, ok := counts[kind]; ok {
			fmt.Printf("  %-8s %d\n", kind, c)
		}
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}

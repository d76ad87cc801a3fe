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
	"math/rand"
	"os"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/karelpeeters/tcpu-synth/pkg/place"
)

var placeCmd = &cobra.Command{
	Use:   "place [flags] design",
	Short: "synthesize and anneal-place a named design on a grid.",
	Long: `Run the full pipeline (optimize, lower, coalesce bridges) on a named design,
	 then place its netlist on a grid with simulated annealing, reporting the
	 HPWL cost before and after annealing in a boxed summary.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		d := FindDesign(args[0])
		n := synthesize(cmd, d.List)

		g := place.New(n)
		before := g.TotalCost()

		iterations := int(GetUint(cmd, "iterations"))
		temperature := GetFloat64(cmd, "temperature")
		seed := GetInt64(cmd, "seed")

		cfg := place.Config{
			Iterations:  iterations,
			Temperature: temperature,
			Rand:        rand.New(rand.NewSource(seed)),
		}

		accepted := place.Anneal(g, cfg)

		if err := g.ValidateInvariants(); err != nil {
			color.Red("placement invariant violated: %s", err)
			os.Exit(1)
		}

		printPlacementSummary(d.Name, g.Side(), before, g.TotalCost(), iterations, accepted)
	},
}

func printPlacementSummary(name string, side, before, after, iterations, accepted int) {
	width := boxWidth()
	lines := []string{
		fmt.Sprintf("design:     %s", name),
		fmt.Sprintf("grid:       %dx%d", side, side),
		fmt.Sprintf("iterations: %d (%d accepted)", iterations, accepted),
		fmt.Sprintf("cost:       %d -> %d", before, after),
	}

	fmt.Println(strings.Repeat("-", width))

	for _, l := range lines {
		if len(l) > width {
			l = l[:width]
		}

		fmt.Println(l)
	}

	fmt.Println(strings.Repeat("-", width))

	if after <= before {
		color.Green("cost did not increase")
	} else {
		color.Yellow("cost increased (non-zero temperature accepted a worse layout)")
	}
}

// boxWidth picks the summary box's width from the controlling terminal,
// falling back to 40 columns when stdout is not a terminal (e.g. piped).
func boxWidth() int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			if w > 72 {
				return 72
			}

			return w
		}
	}

	return 40
}

func init() {
	rootCmd.AddCommand(placeCmd)
	placeCmd.Flags().Uint("iterations", 2000, "number of annealing swap proposals")
	placeCmd.Flags().Float64("temperature", 0, "annealing temperature (0 = greedy descent)")
	placeCmd.Flags().Int64("seed", 1, "seed for the annealer's random source")
}

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

	"github.com/spf13/cobra"

	"github.com/karelpeeters/tcpu-synth/internal/demo"
	"github.com/karelpeeters/tcpu-synth/pkg/ir/logic"
)

// GetFlag gets an expected boolean flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(4)
	}

	return r
}

// GetInt64 gets an expected 64-bit signed integer flag, or exits if an error arises.
func GetInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(5)
	}

	return r
}

// GetFloat64 gets an expected floating-point flag, or exits if an error arises.
func GetFloat64(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(6)
	}

	return r
}

// FindDesign looks up a demo design by name, exiting with a usage error if
// no design with that name exists.
func FindDesign(name string) *demo.Design {
	for _, d := range demo.All() {
		if d.Name == name {
			return d
		}
	}

	fmt.Printf("unknown design \"%s\"; available designs:\n", name)

	for _, d := range demo.All() {
		fmt.Printf("  %s\n", d.Name)
	}

	os.Exit(2)

	return nil
}

// optimisationConfig builds a logic.OptimisationConfig from the
// individually-togglable pass flags registered on rootCmd.
func optimisationConfig(cmd *cobra.Command) logic.OptimisationConfig {
	return logic.OptimisationConfig{
		ConstProp: !GetFlag(cmd, "no-const-prop"),
		DCE:       !GetFlag(cmd, "no-dce"),
		Dedup:     !GetFlag(cmd, "no-dedup"),
		Peephole:  !GetFlag(cmd, "no-peephole"),
	}
}

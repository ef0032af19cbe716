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

	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var infoCmd = &cobra.Command{
	Use:   "info [flags]",
	Short: "describe the working q-adic field.",
	Long: `Print the parameters of the working field: prime, degree, default
	 precision and generator.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		fld := resolveField(cmd)
		//
		if GetFlag(cmd, "json") {
			out := map[string]any{
				"prime":     fld.Prime().String(),
				"degree":    fld.Degree(),
				"precision": fld.Precision(),
				"label":     fld.Label(),
				"generator": fld.Generator().String(),
			}
			//
			bytes, err := json.Marshal(out)
			//
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			fmt.Println(string(bytes))
			//
			return
		}
		// Unicode field names only when talking to a real terminal
		name := "Q"
		//
		if term.IsTerminal(int(os.Stdout.Fd())) {
			name = "ℚ"
		}
		//
		fmt.Printf("field:     %s_%s", name, fld.Prime())
		//
		if fld.Degree() > 1 {
			fmt.Printf("[%s], degree %d", fld.Label(), fld.Degree())
		}
		//
		fmt.Println()
		fmt.Printf("precision: %d\n", fld.Precision())
		fmt.Printf("generator: %s\n", fld.Generator())
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

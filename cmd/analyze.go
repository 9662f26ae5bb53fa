/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/sfltran/internal/sfl"
)

var analyzePretty bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Print the SFL features of a sentence",
	Long: `Extract SFL features from a single sentence and print them as JSON:
process type, participants, circumstances, mood, theme, register
(field, tenor, mode) and cohesion markers.

Text is taken from the arguments, or from --input / stdin when no
arguments are given.

Example:
  sfltran analyze "The CEO announced the merger."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}

		features := sfl.Extract(text)

		var out []byte
		if analyzePretty {
			out, err = json.MarshalIndent(features, "", "  ")
		} else {
			out, err = json.Marshal(features)
		}
		if err != nil {
			return fmt.Errorf("failed to encode features: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read text from file instead of arguments")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "Indent JSON output")
}

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
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/sfltran/internal/core"
)

var (
	inputFile  string
	sourceLang string
	targetLang string

	analyze            bool
	region             string
	preserveRegister   bool
	culturalAdaptation bool
	localize           bool
	jsonOutput         bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate a sentence, optionally with SFL analysis",
	Long: `Translate a sentence through the configured translation services.

Services are tried in order until one succeeds:
  - stub        placeholder, returns "[Translated to <lang>]: <text>"
  - ollama      Ollama LLM (self-hosted), register/region-aware prompt
  - google      Google Cloud Translation (requires credentials)
  - mymemory    MyMemory (free, 5000 chars/day)

Use multiple services: --services ollama,mymemory,stub

--preserve-register and --cultural-adaptation are passed to the service
but do not yet change the output of any built-in service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}

		chain, err := buildChain(cfg, logger)
		if err != nil {
			return err
		}

		opts, err := translatorOptions(cfg, sourceLang, logger)
		if err != nil {
			return err
		}
		opts = append(opts, core.WithLocalize(localize))

		tr := core.New(chain, opts...)

		result, err := tr.Translate(cmd.Context(), text, sourceLang, targetLang, core.Options{
			Analyze:            analyze,
			Region:             region,
			PreserveRegister:   preserveRegister,
			CulturalAdaptation: culturalAdaptation,
		})
		if err != nil {
			return err
		}

		if result.SourceLang != sourceLang {
			fmt.Fprintf(os.Stderr, "Detected source language: %s\n", result.SourceLang)
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Fprintf(w, "Translation: %s\n", result.TranslatedText)
		if f := result.Features; f != nil {
			fmt.Fprintf(w, "Process Type: %s\n", f.ProcessType)
			fmt.Fprintf(w, "Mood: %s\n", f.Mood)
			fmt.Fprintf(w, "Theme: %s\n", f.Theme)
			fmt.Fprintf(w, "Register: field=%s tenor=%s mode=%s\n", f.Register.Field, f.Register.Tenor, f.Register.Mode)
			if len(f.CohesionMarkers) > 0 {
				fmt.Fprintf(w, "Cohesion: %s\n", strings.Join(f.CohesionMarkers, ", "))
			}
		}
		return nil
	},
}

// readText joins args, or reads --input, or stdin when neither is given.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read text from file instead of arguments")
	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", "auto", "Source language code (auto to detect)")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language code (required)")

	translateCmd.Flags().BoolVarP(&analyze, "analyze", "a", false, "Attach SFL feature analysis")
	translateCmd.Flags().StringVar(&region, "region", "", "Target region, e.g. CA for fr-CA")
	translateCmd.Flags().BoolVar(&preserveRegister, "preserve-register", true, "Ask the service to keep the source register")
	translateCmd.Flags().BoolVar(&culturalAdaptation, "cultural-adaptation", false, "Ask the service to adapt cultural references")
	translateCmd.Flags().BoolVar(&localize, "localize", false, "Produce localized output (implies --cultural-adaptation)")
	translateCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full result as JSON")

	translateCmd.MarkFlagRequired("target")
}

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
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/sfltran/internal/agent"
	"github.com/valpere/sfltran/internal/core"
)

var (
	agentID         string
	agentLanguages  []string
	agentMode       string
	agentSourceLang string
	agentTargetLang string
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Run as a line-oriented translation agent",
	Long: `Start a translation agent that reads one sentence per line from stdin
and writes one JSON result per line to stdout.

Each result is emitted by the agent's completion callback. Failed lines
are reported on stderr and do not stop the agent.

Example:
  echo "Hello" | sfltran agent --id a1 --source en --target fr`,
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, err := buildChain(cfg, logger)
		if err != nil {
			return err
		}
		opts, err := translatorOptions(cfg, agentSourceLang, logger)
		if err != nil {
			return err
		}

		a := agent.New(agent.Config{
			ID:                 agentID,
			SupportedLanguages: agentLanguages,
			Mode:               agentMode,
			Service:            chain,
			TranslatorOptions:  opts,
			Logger:             logger,
		})

		if !a.Supports(agentTargetLang) && len(agentLanguages) > 0 {
			fmt.Fprintf(os.Stderr, "Warning: target %s is not in the agent's language list\n", agentTargetLang)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		a.RegisterCallback(func(r *core.TranslationResult) {
			if err := enc.Encode(r); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write result: %v\n", err)
			}
		})

		a.Start()
		defer a.Stop()

		ctx := cmd.Context()
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if _, err := a.Translate(ctx, line, agentSourceLang, agentTargetLang); err != nil {
				fmt.Fprintf(os.Stderr, "Translation failed: %v\n", err)
			}
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(agentCmd)

	agentCmd.Flags().StringVar(&agentID, "id", "sfltran-agent", "Agent identifier")
	agentCmd.Flags().StringSliceVar(&agentLanguages, "languages", nil, "Languages this agent advertises (comma-separated)")
	agentCmd.Flags().StringVar(&agentMode, "mode", agent.DefaultMode, "Agent mode")
	agentCmd.Flags().StringVarP(&agentSourceLang, "source", "s", "auto", "Source language code (auto to detect)")
	agentCmd.Flags().StringVarP(&agentTargetLang, "target", "t", "", "Target language code (required)")

	agentCmd.MarkFlagRequired("target")
}

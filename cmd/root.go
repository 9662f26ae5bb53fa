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
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/valpere/sfltran/internal/config"
	"github.com/valpere/sfltran/internal/logging"
)

var version = "0.1.0"

var (
	cfgFile string
	v       = viper.New()
	cfg     *config.Config
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "sfltran",
	Short: "SFL-aware translation helper",
	Long: `A CLI that analyzes text with Systemic Functional Linguistics features
(process type, mood, theme, register, cohesion) and translates it through a
pluggable translation service.

Use "sfltran analyze --help" and "sfltran translate --help" for details.`,
	Version:       version,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := logging.NewLogger(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default .sfltran.yaml in . or $HOME)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")

	rootCmd.PersistentFlags().StringSlice("services", nil, "Translation services to try in order (comma-separated)")
	rootCmd.PersistentFlags().String("register", "", "Preferred register: formal, informal, academic, business-formal, conversational, technical")
	rootCmd.PersistentFlags().String("ollama-url", "", "Ollama base URL")
	rootCmd.PersistentFlags().String("ollama-model", "", "Ollama model name")
	rootCmd.PersistentFlags().Int("max-attempts", 0, "Total attempts per service including the first")

	for key, flag := range map[string]string{
		"log_level":    "log-level",
		"log_file":     "log-file",
		"services":     "services",
		"register":     "register",
		"ollama.url":   "ollama-url",
		"ollama.model": "ollama-model",
		"max_attempts": "max-attempts",
	} {
		_ = v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}
}

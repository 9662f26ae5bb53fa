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
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/valpere/sfltran/internal/config"
	"github.com/valpere/sfltran/internal/core"
	"github.com/valpere/sfltran/internal/detector"
	"github.com/valpere/sfltran/internal/orchestrator"
	"github.com/valpere/sfltran/internal/translator"
)

// buildServices constructs the translation services named in cfg.Services,
// in order.
func buildServices(cfg *config.Config) ([]translator.TranslationService, error) {
	var list []translator.TranslationService

	for _, name := range cfg.Services {
		switch name {
		case "stub":
			list = append(list, translator.NewStubService())
		case "google":
			list = append(list, translator.NewGoogleService())
		case "mymemory":
			list = append(list, translator.NewMyMemoryService(cfg.MyMemory.Email))
		case "ollama":
			list = append(list, translator.NewOllamaTranslator(cfg.Ollama.URL, cfg.Ollama.Model))
		default:
			fmt.Fprintf(os.Stderr, "Unknown service: %s, skipping\n", name)
		}
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("no valid services configured")
	}
	return list, nil
}

// buildChain wraps the configured services in a fallback chain. A single
// service is still chained so retries and timeouts apply.
func buildChain(cfg *config.Config, log *zap.Logger) (*orchestrator.Orchestrator, error) {
	services, err := buildServices(cfg)
	if err != nil {
		return nil, err
	}
	return orchestrator.New(services, orchestrator.OrchestratorConfig{
		Timeout:     cfg.Timeout,
		MaxAttempts: cfg.MaxAttempts,
	}, log), nil
}

// translatorOptions returns the façade options derived from cfg. The
// detector is only built when the source language needs it.
func translatorOptions(cfg *config.Config, sourceLang string, log *zap.Logger) ([]core.Option, error) {
	register, err := core.ParseRegister(cfg.Register)
	if err != nil {
		return nil, err
	}

	opts := []core.Option{
		core.WithRegister(register),
		core.WithLogger(log),
		core.WithServiceConfig(translator.ServiceConfig{
			Credentials: cfg.Google.Credentials,
			ProjectID:   cfg.Google.ProjectID,
			APIKey:      cfg.Google.APIKey,
		}),
	}
	if strings.EqualFold(sourceLang, detector.Auto) {
		opts = append(opts, core.WithDetector(detector.New(cfg.DetectLanguages...)))
	}
	return opts, nil
}

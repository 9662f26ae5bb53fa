// Package agent exposes the translator to multi-agent orchestration
// systems: a start/stop lifecycle, a completion callback and a plain
// text-in/text-out Translate.
package agent

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/valpere/sfltran/internal/core"
	"github.com/valpere/sfltran/internal/translator"
)

const DefaultMode = "orchestrated"

// CompletionFunc is called synchronously after each successful translation.
type CompletionFunc func(*core.TranslationResult)

type Agent struct {
	id        string
	languages []string
	mode      string
	service   translator.TranslationService
	opts      []core.Option
	logger    *zap.Logger

	mu         sync.Mutex
	running    bool
	onComplete CompletionFunc
}

type Config struct {
	ID                 string
	SupportedLanguages []string
	Mode               string
	// Service backs every translation. Nil means the stub backend.
	Service translator.TranslationService
	// TranslatorOptions are applied to each per-call façade.
	TranslatorOptions []core.Option
	Logger            *zap.Logger
}

func New(cfg Config) *Agent {
	if cfg.Mode == "" {
		cfg.Mode = DefaultMode
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Agent{
		id:        cfg.ID,
		languages: cfg.SupportedLanguages,
		mode:      cfg.Mode,
		service:   cfg.Service,
		opts:      cfg.TranslatorOptions,
		logger:    cfg.Logger.With(zap.String("agent_id", cfg.ID)),
	}
}

func (a *Agent) ID() string   { return a.id }
func (a *Agent) Mode() string { return a.mode }

// Supports reports whether lang is one of the agent's advertised languages.
// The list is informational; Translate does not enforce it.
func (a *Agent) Supports(lang string) bool {
	for _, l := range a.languages {
		if strings.EqualFold(l, lang) {
			return true
		}
	}
	return false
}

// RegisterCallback replaces the completion callback. A nil fn is ignored.
func (a *Agent) RegisterCallback(fn CompletionFunc) {
	if fn == nil {
		return
	}
	a.mu.Lock()
	a.onComplete = fn
	a.mu.Unlock()
}

func (a *Agent) Start() {
	a.mu.Lock()
	a.running = true
	a.mu.Unlock()
	a.logger.Info("translation agent started", zap.String("mode", a.mode))
}

func (a *Agent) Stop() {
	a.mu.Lock()
	a.running = false
	a.mu.Unlock()
	a.logger.Info("translation agent stopped")
}

func (a *Agent) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Translate translates text with default options (no analysis) and returns
// only the translated string. The callback sees the full result.
func (a *Agent) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	reqID := uuid.New().String()
	log := a.logger.With(
		zap.String("request_id", reqID),
		zap.String("source_lang", sourceLang),
		zap.String("target_lang", targetLang))

	opts := append(append([]core.Option{}, a.opts...), core.WithLogger(log))
	tr := core.New(a.service, opts...)

	result, err := tr.Translate(ctx, text, sourceLang, targetLang, core.Options{})
	if err != nil {
		log.Error("translation failed", zap.Error(err))
		return "", err
	}
	log.Debug("translation complete", zap.Int("chars", len(result.TranslatedText)))

	a.mu.Lock()
	cb := a.onComplete
	a.mu.Unlock()
	if cb != nil {
		cb(result)
	}

	return result.TranslatedText, nil
}

// Package core is the translation façade: it optionally runs the SFL feature
// extractor and delegates the text itself to a TranslationService.
package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/valpere/sfltran/internal/detector"
	"github.com/valpere/sfltran/internal/sfl"
	"github.com/valpere/sfltran/internal/translator"
)

type Translator struct {
	service  translator.TranslationService
	cfg      translator.ServiceConfig
	register Register
	localize bool
	detector *detector.Detector
	logger   *zap.Logger
}

type Option func(*Translator)

func WithRegister(r Register) Option {
	return func(t *Translator) { t.register = r }
}

// WithLocalize marks the translator as producing localized output. It is
// recorded on the request as cultural adaptation.
func WithLocalize(localize bool) Option {
	return func(t *Translator) { t.localize = localize }
}

func WithDetector(d *detector.Detector) Option {
	return func(t *Translator) { t.detector = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

func WithServiceConfig(cfg translator.ServiceConfig) Option {
	return func(t *Translator) { t.cfg = cfg }
}

// New returns a Translator backed by service. A nil service falls back to
// the stub backend.
func New(service translator.TranslationService, opts ...Option) *Translator {
	if service == nil {
		service = translator.NewStubService()
	}
	t := &Translator{
		service: service,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Translator) Service() translator.TranslationService {
	return t.service
}

// Translate runs the façade for one piece of text. Service failures are
// returned wrapped in ErrTranslationServiceUnavailable.
func (t *Translator) Translate(ctx context.Context, text, sourceLang, targetLang string, opts Options) (*TranslationResult, error) {
	if t.detector != nil {
		sourceLang = t.detector.Resolve(sourceLang, text)
	}

	var features *sfl.FeatureBundle
	if opts.Analyze {
		f := sfl.Extract(text)
		features = &f
	}

	req := translator.TranslateRequest{
		Text:               text,
		SourceLang:         sourceLang,
		TargetLang:         targetLang,
		Region:             opts.Region,
		Register:           string(t.register),
		PreserveRegister:   opts.PreserveRegister,
		CulturalAdaptation: opts.CulturalAdaptation || t.localize,
	}

	t.logger.Debug("translating",
		zap.String("service", t.service.Name()),
		zap.String("source_lang", sourceLang),
		zap.String("target_lang", targetLang),
		zap.String("region", opts.Region),
		zap.Bool("analyze", opts.Analyze),
		zap.Bool("preserve_register", req.PreserveRegister),
		zap.Bool("cultural_adaptation", req.CulturalAdaptation))

	res, err := t.service.Translate(ctx, t.cfg, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTranslationServiceUnavailable, t.service.Name(), err)
	}
	if res == nil || res.Error != "" {
		msg := "no result"
		if res != nil {
			msg = res.Error
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrTranslationServiceUnavailable, t.service.Name(), msg)
	}

	return &TranslationResult{
		TranslatedText: res.TranslatedText,
		SourceText:     text,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
		Features:       features,
		Confidence:     DefaultConfidence,
	}, nil
}

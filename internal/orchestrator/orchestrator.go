// Package orchestrator chains translation services: each one is tried in
// order until one succeeds. The chain is itself a TranslationService.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/valpere/sfltran/internal/translator"
)

// ErrAllServicesFailed is returned when no service in the chain produced a
// translation.
var ErrAllServicesFailed = errors.New("all translation services failed")

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 1
	defaultRetryDelay  = 500 * time.Millisecond
)

type OrchestratorConfig struct {
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
}

type OrchestratorResult struct {
	Result *translator.ServiceResult
	Errors []error
	Tried  int
}

type Orchestrator struct {
	services []translator.TranslationService
	config   OrchestratorConfig
	logger   *zap.Logger
}

func New(services []translator.TranslationService, config OrchestratorConfig, logger *zap.Logger) *Orchestrator {
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaultMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = defaultRetryDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		services: services,
		config:   config,
		logger:   logger,
	}
}

func (o *Orchestrator) Name() string {
	names := make([]string, len(o.services))
	for i, s := range o.services {
		names[i] = s.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// Execute walks the chain and reports every failure it saw along the way.
func (o *Orchestrator) Execute(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) *OrchestratorResult {
	result := &OrchestratorResult{}

	for _, svc := range o.services {
		if ctx.Err() != nil {
			result.Errors = append(result.Errors, ctx.Err())
			break
		}
		result.Tried++

		res, err := o.tryService(ctx, svc, cfg, req)
		if err == nil {
			result.Result = res
			return result
		}

		o.logger.Warn("translation service failed",
			zap.String("service", svc.Name()),
			zap.Error(err))
		result.Errors = append(result.Errors, err)
	}

	return result
}

func (o *Orchestrator) tryService(ctx context.Context, svc translator.TranslationService, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	var lastErr error
	for attempt := 1; attempt <= o.config.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(o.config.RetryDelay):
			}
		}

		serviceCtx, cancel := context.WithTimeout(ctx, o.config.Timeout)
		res, err := svc.Translate(serviceCtx, cfg, req)
		cancel()

		switch {
		case err != nil:
			lastErr = fmt.Errorf("%s: %w", svc.Name(), err)
		case res == nil:
			lastErr = fmt.Errorf("%s: no result", svc.Name())
		case res.Error != "":
			lastErr = fmt.Errorf("%s: %s", svc.Name(), res.Error)
		default:
			return res, nil
		}

		o.logger.Debug("translation attempt failed",
			zap.String("service", svc.Name()),
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
	}
	return nil, lastErr
}

// Translate returns the first successful result. On total failure the error
// wraps ErrAllServicesFailed and every per-service error.
func (o *Orchestrator) Translate(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	res := o.Execute(ctx, cfg, req)
	if res.Result != nil {
		return res.Result, nil
	}
	errs := append([]error{ErrAllServicesFailed}, res.Errors...)
	return &translator.ServiceResult{
		ServiceName: o.Name(),
		Error:       ErrAllServicesFailed.Error(),
	}, errors.Join(errs...)
}

// IsAvailable succeeds if any service in the chain is available.
func (o *Orchestrator) IsAvailable(ctx context.Context) error {
	if len(o.services) == 0 {
		return ErrAllServicesFailed
	}
	var errs []error
	for _, svc := range o.services {
		err := svc.IsAvailable(ctx)
		if err == nil {
			return nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", svc.Name(), err))
	}
	return errors.Join(errs...)
}

// SupportedLanguages is the union of every service's languages, in first-seen
// order.
func (o *Orchestrator) SupportedLanguages(ctx context.Context) ([]string, error) {
	var langs []string
	seen := make(map[string]bool)
	for _, svc := range o.services {
		l, err := svc.SupportedLanguages(ctx)
		if err != nil {
			continue
		}
		for _, code := range l {
			if !seen[code] {
				seen[code] = true
				langs = append(langs, code)
			}
		}
	}
	return langs, nil
}

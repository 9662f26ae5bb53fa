package orchestrator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/valpere/sfltran/internal/translator"
)

type mockService struct {
	nameVal       string
	translateFunc func(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error)
	availableFunc func(ctx context.Context) error
	languagesFunc func(ctx context.Context) ([]string, error)
	callCount     atomic.Int32
}

func (m *mockService) Name() string { return m.nameVal }

func (m *mockService) Translate(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	m.callCount.Add(1)
	if m.translateFunc != nil {
		return m.translateFunc(ctx, cfg, req)
	}
	return &translator.ServiceResult{ServiceName: m.nameVal, TranslatedText: "mock result"}, nil
}

func (m *mockService) IsAvailable(ctx context.Context) error {
	if m.availableFunc != nil {
		return m.availableFunc(ctx)
	}
	return nil
}

func (m *mockService) SupportedLanguages(ctx context.Context) ([]string, error) {
	if m.languagesFunc != nil {
		return m.languagesFunc(ctx)
	}
	return []string{"en", "uk"}, nil
}

func failing(name string, err error) *mockService {
	return &mockService{
		nameVal: name,
		translateFunc: func(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
			return &translator.ServiceResult{ServiceName: name, Error: err.Error()}, err
		},
	}
}

func TestOrchestrator_New_Defaults(t *testing.T) {
	o := New([]translator.TranslationService{&mockService{nameVal: "mock1"}}, OrchestratorConfig{}, nil)

	if o.config.MaxAttempts != defaultMaxAttempts {
		t.Errorf("expected MaxAttempts=%d, got %d", defaultMaxAttempts, o.config.MaxAttempts)
	}
	if o.config.Timeout != defaultTimeout {
		t.Errorf("expected default timeout, got %v", o.config.Timeout)
	}
	if o.config.RetryDelay <= 0 {
		t.Error("expected positive RetryDelay")
	}
	if o.logger == nil {
		t.Error("expected nop logger")
	}
}

func TestOrchestrator_Name(t *testing.T) {
	o := New([]translator.TranslationService{
		&mockService{nameVal: "stub"},
		&mockService{nameVal: "ollama"},
	}, OrchestratorConfig{}, nil)

	if o.Name() != "chain(stub,ollama)" {
		t.Errorf("unexpected name %q", o.Name())
	}
}

func TestOrchestrator_Translate_FirstSuccessWins(t *testing.T) {
	first := &mockService{nameVal: "first"}
	second := &mockService{nameVal: "second"}

	o := New([]translator.TranslationService{first, second}, OrchestratorConfig{}, nil)

	res, err := o.Translate(context.Background(), translator.ServiceConfig{}, translator.TranslateRequest{Text: "Hi", TargetLang: "fr"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ServiceName != "first" {
		t.Errorf("expected result from 'first', got %q", res.ServiceName)
	}
	if second.callCount.Load() != 0 {
		t.Error("second service should not be called")
	}
}

func TestOrchestrator_Translate_FallsBack(t *testing.T) {
	first := failing("first", errors.New("connection refused"))
	second := &mockService{nameVal: "second"}

	o := New([]translator.TranslationService{first, second}, OrchestratorConfig{}, nil)

	result := o.Execute(context.Background(), translator.ServiceConfig{}, translator.TranslateRequest{Text: "Hi", TargetLang: "fr"})
	if result.Result == nil {
		t.Fatal("expected a result")
	}
	if result.Result.ServiceName != "second" {
		t.Errorf("expected result from 'second', got %q", result.Result.ServiceName)
	}
	if result.Tried != 2 {
		t.Errorf("expected 2 services tried, got %d", result.Tried)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error, got %d", len(result.Errors))
	}
}

func TestOrchestrator_Translate_ResultErrorCountsAsFailure(t *testing.T) {
	first := &mockService{
		nameVal: "first",
		translateFunc: func(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
			return &translator.ServiceResult{ServiceName: "first", Error: "quota exceeded"}, nil
		},
	}
	second := &mockService{nameVal: "second"}

	o := New([]translator.TranslationService{first, second}, OrchestratorConfig{}, nil)

	res, err := o.Translate(context.Background(), translator.ServiceConfig{}, translator.TranslateRequest{Text: "Hi", TargetLang: "fr"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ServiceName != "second" {
		t.Errorf("expected result from 'second', got %q", res.ServiceName)
	}
}

func TestOrchestrator_Translate_AllFail(t *testing.T) {
	cause := errors.New("boom")
	o := New([]translator.TranslationService{
		failing("a", cause),
		failing("b", errors.New("down")),
	}, OrchestratorConfig{}, nil)

	res, err := o.Translate(context.Background(), translator.ServiceConfig{}, translator.TranslateRequest{Text: "Hi", TargetLang: "fr"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrAllServicesFailed) {
		t.Errorf("expected ErrAllServicesFailed, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected underlying cause to be wrapped, got %v", err)
	}
	if res == nil || res.Error == "" {
		t.Error("expected result with error message")
	}
}

func TestOrchestrator_Translate_NoServices(t *testing.T) {
	o := New(nil, OrchestratorConfig{}, nil)

	_, err := o.Translate(context.Background(), translator.ServiceConfig{}, translator.TranslateRequest{Text: "Hi", TargetLang: "fr"})
	if !errors.Is(err, ErrAllServicesFailed) {
		t.Errorf("expected ErrAllServicesFailed, got %v", err)
	}
}

func TestOrchestrator_Retries(t *testing.T) {
	var calls atomic.Int32
	flaky := &mockService{
		nameVal: "flaky",
		translateFunc: func(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
			if calls.Add(1) < 3 {
				return nil, errors.New("temporary")
			}
			return &translator.ServiceResult{ServiceName: "flaky", TranslatedText: "ok"}, nil
		},
	}

	o := New([]translator.TranslationService{flaky}, OrchestratorConfig{
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	}, nil)

	res, err := o.Translate(context.Background(), translator.ServiceConfig{}, translator.TranslateRequest{Text: "Hi", TargetLang: "fr"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TranslatedText != "ok" {
		t.Errorf("expected 'ok', got %q", res.TranslatedText)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 calls, got %d", calls.Load())
	}
}

func TestOrchestrator_Timeout(t *testing.T) {
	slow := &mockService{
		nameVal: "slow",
		translateFunc: func(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	o := New([]translator.TranslationService{slow}, OrchestratorConfig{Timeout: 10 * time.Millisecond}, nil)

	_, err := o.Translate(context.Background(), translator.ServiceConfig{}, translator.TranslateRequest{Text: "Hi", TargetLang: "fr"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestOrchestrator_CanceledContext(t *testing.T) {
	svc := &mockService{nameVal: "mock"}
	o := New([]translator.TranslationService{svc}, OrchestratorConfig{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.Translate(ctx, translator.ServiceConfig{}, translator.TranslateRequest{Text: "Hi", TargetLang: "fr"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if svc.callCount.Load() != 0 {
		t.Error("service should not be called with a canceled context")
	}
}

func TestOrchestrator_IsAvailable(t *testing.T) {
	down := &mockService{nameVal: "down", availableFunc: func(ctx context.Context) error { return errors.New("down") }}
	up := &mockService{nameVal: "up"}

	if err := New([]translator.TranslationService{down, up}, OrchestratorConfig{}, nil).IsAvailable(context.Background()); err != nil {
		t.Errorf("expected chain to be available, got %v", err)
	}
	if err := New([]translator.TranslationService{down}, OrchestratorConfig{}, nil).IsAvailable(context.Background()); err == nil {
		t.Error("expected error when no service is available")
	}
}

func TestOrchestrator_SupportedLanguages(t *testing.T) {
	a := &mockService{nameVal: "a", languagesFunc: func(ctx context.Context) ([]string, error) { return []string{"en", "fr"}, nil }}
	b := &mockService{nameVal: "b", languagesFunc: func(ctx context.Context) ([]string, error) { return []string{"fr", "uk"}, nil }}
	c := &mockService{nameVal: "c", languagesFunc: func(ctx context.Context) ([]string, error) { return nil, errors.New("x") }}

	langs, err := New([]translator.TranslationService{a, b, c}, OrchestratorConfig{}, nil).SupportedLanguages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"en", "fr", "uk"}
	if len(langs) != len(want) {
		t.Fatalf("expected %v, got %v", want, langs)
	}
	for i := range want {
		if langs[i] != want[i] {
			t.Errorf("expected %v, got %v", want, langs)
			break
		}
	}
}

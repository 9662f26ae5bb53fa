package translator

import (
	"context"
	"fmt"
	"time"
)

// StubService is the placeholder backend. It performs no translation and
// only tags the text with the target language.
type StubService struct{}

func NewStubService() *StubService {
	return &StubService{}
}

func (s *StubService) Name() string {
	return "stub"
}

func (s *StubService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	if err := ctx.Err(); err != nil {
		result.Error = err.Error()
		return result, err
	}

	result.TranslatedText = StubText(req.Text, req.TargetLang)
	result.Confidence = 1.0
	return result, nil
}

func (s *StubService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *StubService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"*"}, nil
}

// StubText formats text the way StubService returns it.
func StubText(text, targetLang string) string {
	return fmt.Sprintf("[Translated to %s]: %s", targetLang, text)
}

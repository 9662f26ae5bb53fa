package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleService uses Cloud Translation v2. Credentials come from
// ServiceConfig.Credentials or the default application credentials.
type GoogleService struct{}

func NewGoogleService() *GoogleService {
	return &GoogleService{}
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	target, err := targetTag(req.TargetLang, req.Region)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	client, err := translate.NewClient(ctx, s.clientOptions(cfg)...)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create client: %v", err)
		return result, fmt.Errorf("google: failed to create client: %w", err)
	}
	defer client.Close()

	var opts *translate.Options
	if req.SourceLang != "" && req.SourceLang != "auto" {
		if source, err := language.Parse(req.SourceLang); err == nil {
			opts = &translate.Options{Source: source}
		}
	}

	translations, err := client.Translate(ctx, []string{remoteText(req.Text)}, target, opts)
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("google: translation failed: %w", err)
	}
	if len(translations) == 0 {
		result.Error = "no translation returned"
		return result, fmt.Errorf("google: no translation returned")
	}

	result.TranslatedText = translations[0].Text
	result.Confidence = 1.0
	if translations[0].Source != language.Und {
		result.Metadata = map[string]string{"detected_source": translations[0].Source.String()}
	}
	return result, nil
}

func (s *GoogleService) clientOptions(cfg ServiceConfig) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	return opts
}

func (s *GoogleService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *GoogleService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return nil, nil
}

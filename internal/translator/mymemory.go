package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultMyMemoryURL = "https://api.mymemory.translated.net/get"

// MyMemoryService calls the free MyMemory API (5000 chars/day anonymously).
type MyMemoryService struct {
	endpoint string
	email    string
	client   *http.Client
}

func NewMyMemoryService(email string) *MyMemoryService {
	return &MyMemoryService{
		endpoint: defaultMyMemoryURL,
		email:    email,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

func (s *MyMemoryService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := req.SourceLang
	if sourceLang == "" || sourceLang == "auto" {
		sourceLang = "en"
	}

	target := req.TargetLang
	if tag, err := targetTag(req.TargetLang, req.Region); err == nil {
		target = tag.String()
	}

	endpoint := s.endpoint
	if cfg.BaseURL != "" {
		endpoint = cfg.BaseURL
	}

	q := url.Values{}
	q.Set("q", remoteText(req.Text))
	q.Set("langpair", fmt.Sprintf("%s|%s", sourceLang, target))
	if s.email != "" {
		q.Set("de", s.email)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, err
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, err
	}
	defer resp.Body.Close()

	var mymemResp struct {
		ResponseData struct {
			TranslatedText string  `json:"translatedText"`
			Match          float64 `json:"match"`
		} `json:"responseData"`
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&mymemResp); err != nil {
		result.Error = fmt.Sprintf("failed to decode response: %v", err)
		return result, err
	}

	if mymemResp.ResponseStatus != http.StatusOK {
		result.Error = fmt.Sprintf("API error: %s (%d)", mymemResp.ResponseDetails, mymemResp.ResponseStatus)
		return result, fmt.Errorf("mymemory: API error: %s", mymemResp.ResponseDetails)
	}

	result.TranslatedText = mymemResp.ResponseData.TranslatedText
	result.Confidence = clamp01(mymemResp.ResponseData.Match)
	return result, nil
}

func (s *MyMemoryService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *MyMemoryService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{
		"en", "es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh",
		"ar", "nl", "pl", "tr", "sv", "da", "no", "fi", "el", "he",
		"th", "vi", "id", "ms", "cs", "hu", "ro", "uk", "bg", "ca",
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

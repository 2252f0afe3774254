package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/openvoicekit/voicecatalog/domain/entities"
	"github.com/openvoicekit/voicecatalog/domain/repositories"
)

const defaultWitAiBaseURL = "https://api.wit.ai"

// WitAiConfig holds configuration for the Wit.ai voice source. Token is
// required.
type WitAiConfig struct {
	Token      string
	APIBaseURL string
}

// WitAiSource lists voices from the Wit.ai API. The API groups voices by
// locale; the source flattens the grouping into one record per voice.
type WitAiSource struct {
	token      string
	apiBaseURL string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ repositories.VoiceSource = (*WitAiSource)(nil)

// NewWitAiSource creates a new Wit.ai voice source.
func NewWitAiSource(config WitAiConfig, logger *zap.Logger) (*WitAiSource, error) {
	if config.Token == "" {
		return nil, fmt.Errorf("wit.ai token is required")
	}

	apiBaseURL := config.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultWitAiBaseURL
	}

	return &WitAiSource{
		token:      config.Token,
		apiBaseURL: apiBaseURL,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

type witAiVoice struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

// GetVoices retrieves the available voices from the Wit.ai API.
func (s *WitAiSource) GetVoices(ctx context.Context) ([]entities.RawRecord, error) {
	url := fmt.Sprintf("%s/voices?v=20240304", s.apiBaseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &entities.ProviderError{Engine: "witai", Err: fmt.Errorf("failed to create HTTP request: %w", err)}
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, &entities.ProviderError{Engine: "witai", Err: fmt.Errorf("failed to execute HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, &entities.ProviderError{Engine: "witai", Err: fmt.Errorf("API returned error %d: %s", resp.StatusCode, string(errorBody))}
	}

	var byLocale map[string][]witAiVoice
	if err := json.NewDecoder(resp.Body).Decode(&byLocale); err != nil {
		return nil, &entities.ProviderError{Engine: "witai", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	// Map iteration order is random; sort locales so repeated fetches
	// produce the same record order.
	locales := make([]string, 0, len(byLocale))
	for locale := range byLocale {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	var records []entities.RawRecord
	for _, locale := range locales {
		code := strings.ReplaceAll(locale, "_", "-")
		for _, v := range byLocale[locale] {
			record := entities.RawRecord{
				"id":             v.Name,
				"name":           strings.TrimPrefix(v.Name, "wit$"),
				"language_codes": []string{code},
			}
			if v.Gender != "" {
				record["gender"] = v.Gender
			}
			records = append(records, record)
		}
	}

	s.logger.Info("Retrieved available voices", zap.String("engine", "witai"), zap.Int("count", len(records)))
	return records, nil
}

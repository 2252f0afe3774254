package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/openvoicekit/voicecatalog/domain/entities"
	"github.com/openvoicekit/voicecatalog/domain/repositories"
)

const defaultElevenLabsBaseURL = "https://api.elevenlabs.io/v1"

// ElevenLabsConfig holds configuration for the ElevenLabs voice source.
// APIKey is required; APIBaseURL defaults to the public API.
type ElevenLabsConfig struct {
	APIKey     string
	APIBaseURL string
}

// ElevenLabsSource lists voices from the ElevenLabs API.
type ElevenLabsSource struct {
	apiKey     string
	apiBaseURL string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ repositories.VoiceSource = (*ElevenLabsSource)(nil)

// NewElevenLabsSource creates a new ElevenLabs voice source.
func NewElevenLabsSource(config ElevenLabsConfig, logger *zap.Logger) (*ElevenLabsSource, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("eleven labs API key is required")
	}

	apiBaseURL := config.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultElevenLabsBaseURL
	}

	return &ElevenLabsSource{
		apiKey:     config.APIKey,
		apiBaseURL: apiBaseURL,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

type elevenLabsVoice struct {
	VoiceID           string            `json:"voice_id"`
	Name              string            `json:"name"`
	Labels            map[string]string `json:"labels"`
	VerifiedLanguages []struct {
		Language string `json:"language"`
		Locale   string `json:"locale"`
	} `json:"verified_languages"`
}

// GetVoices retrieves the available voices from the ElevenLabs API.
func (s *ElevenLabsSource) GetVoices(ctx context.Context) ([]entities.RawRecord, error) {
	url := fmt.Sprintf("%s/voices", s.apiBaseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &entities.ProviderError{Engine: "elevenlabs", Err: fmt.Errorf("failed to create HTTP request: %w", err)}
	}
	httpReq.Header.Set("xi-api-key", s.apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, &entities.ProviderError{Engine: "elevenlabs", Err: fmt.Errorf("failed to execute HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, &entities.ProviderError{Engine: "elevenlabs", Err: fmt.Errorf("API returned error %d: %s", resp.StatusCode, string(errorBody))}
	}

	var voicesResponse struct {
		Voices []elevenLabsVoice `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&voicesResponse); err != nil {
		return nil, &entities.ProviderError{Engine: "elevenlabs", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	records := make([]entities.RawRecord, 0, len(voicesResponse.Voices))
	for _, v := range voicesResponse.Voices {
		codes := make([]string, 0, len(v.VerifiedLanguages))
		for _, lang := range v.VerifiedLanguages {
			if lang.Locale != "" {
				codes = append(codes, lang.Locale)
			} else if lang.Language != "" {
				codes = append(codes, lang.Language)
			}
		}

		record := entities.RawRecord{
			"id":             v.VoiceID,
			"name":           v.Name,
			"language_codes": codes,
		}
		if gender, ok := v.Labels["gender"]; ok && gender != "" {
			record["gender"] = gender
		}
		records = append(records, record)
	}

	s.logger.Info("Retrieved available voices", zap.String("engine", "elevenlabs"), zap.Int("count", len(records)))
	return records, nil
}

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

const defaultPlayHTBaseURL = "https://api.play.ht/api/v2"

// PlayHTConfig holds configuration for the Play.ht voice source. APIKey
// and UserID are both required.
type PlayHTConfig struct {
	APIKey     string
	UserID     string
	APIBaseURL string
}

// PlayHTSource lists voices from the Play.ht API.
type PlayHTSource struct {
	apiKey     string
	userID     string
	apiBaseURL string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ repositories.VoiceSource = (*PlayHTSource)(nil)

// NewPlayHTSource creates a new Play.ht voice source.
func NewPlayHTSource(config PlayHTConfig, logger *zap.Logger) (*PlayHTSource, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("play.ht API key is required")
	}
	if config.UserID == "" {
		return nil, fmt.Errorf("play.ht user id is required")
	}

	apiBaseURL := config.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultPlayHTBaseURL
	}

	return &PlayHTSource{
		apiKey:     config.APIKey,
		userID:     config.UserID,
		apiBaseURL: apiBaseURL,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

type playHTVoice struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	LanguageCode string `json:"language_code"`
}

// GetVoices retrieves the available voices from the Play.ht API.
func (s *PlayHTSource) GetVoices(ctx context.Context) ([]entities.RawRecord, error) {
	url := fmt.Sprintf("%s/voices", s.apiBaseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &entities.ProviderError{Engine: "playht", Err: fmt.Errorf("failed to create HTTP request: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", s.apiKey)
	httpReq.Header.Set("X-User-ID", s.userID)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, &entities.ProviderError{Engine: "playht", Err: fmt.Errorf("failed to execute HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, &entities.ProviderError{Engine: "playht", Err: fmt.Errorf("API returned error %d: %s", resp.StatusCode, string(errorBody))}
	}

	var voices []playHTVoice
	if err := json.NewDecoder(resp.Body).Decode(&voices); err != nil {
		return nil, &entities.ProviderError{Engine: "playht", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	records := make([]entities.RawRecord, 0, len(voices))
	for _, v := range voices {
		var codes []string
		if v.LanguageCode != "" {
			codes = []string{v.LanguageCode}
		}
		record := entities.RawRecord{
			"id":             v.ID,
			"name":           v.Name,
			"language_codes": codes,
		}
		if v.Gender != "" {
			record["gender"] = v.Gender
		}
		records = append(records, record)
	}

	s.logger.Info("Retrieved available voices", zap.String("engine", "playht"), zap.Int("count", len(records)))
	return records, nil
}

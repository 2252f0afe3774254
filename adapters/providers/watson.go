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

// WatsonConfig holds configuration for the IBM Watson voice source.
// APIKey, Region, and InstanceID are required unless APIBaseURL
// overrides the computed service URL.
type WatsonConfig struct {
	APIKey     string
	Region     string
	InstanceID string
	APIBaseURL string
}

// WatsonSource lists voices from an IBM Watson Text to Speech instance.
type WatsonSource struct {
	apiKey     string
	listURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ repositories.VoiceSource = (*WatsonSource)(nil)

// NewWatsonSource creates a new Watson voice source.
func NewWatsonSource(config WatsonConfig, logger *zap.Logger) (*WatsonSource, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("watson API key is required")
	}
	if config.APIBaseURL == "" && (config.Region == "" || config.InstanceID == "") {
		return nil, fmt.Errorf("watson region and instance id are required")
	}

	listURL := config.APIBaseURL
	if listURL == "" {
		listURL = fmt.Sprintf("https://api.%s.text-to-speech.watson.cloud.ibm.com/instances/%s",
			config.Region, config.InstanceID)
	}
	listURL += "/v1/voices"

	return &WatsonSource{
		apiKey:     config.APIKey,
		listURL:    listURL,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

type watsonVoice struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Gender      string `json:"gender"`
	Description string `json:"description"`
}

// GetVoices retrieves the available voices from the Watson instance.
func (s *WatsonSource) GetVoices(ctx context.Context) ([]entities.RawRecord, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.listURL, nil)
	if err != nil {
		return nil, &entities.ProviderError{Engine: "watson", Err: fmt.Errorf("failed to create HTTP request: %w", err)}
	}
	httpReq.SetBasicAuth("apikey", s.apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, &entities.ProviderError{Engine: "watson", Err: fmt.Errorf("failed to execute HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, &entities.ProviderError{Engine: "watson", Err: fmt.Errorf("API returned error %d: %s", resp.StatusCode, string(errorBody))}
	}

	var voicesResponse struct {
		Voices []watsonVoice `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&voicesResponse); err != nil {
		return nil, &entities.ProviderError{Engine: "watson", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	records := make([]entities.RawRecord, 0, len(voicesResponse.Voices))
	for _, v := range voicesResponse.Voices {
		name := v.Description
		if name == "" {
			name = v.Name
		}
		record := entities.RawRecord{
			"id":             v.Name,
			"name":           name,
			"language_codes": []string{v.Language},
		}
		if v.Gender != "" {
			record["gender"] = v.Gender
		}
		records = append(records, record)
	}

	s.logger.Info("Retrieved available voices", zap.String("engine", "watson"), zap.Int("count", len(records)))
	return records, nil
}

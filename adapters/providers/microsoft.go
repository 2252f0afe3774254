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

// MicrosoftConfig holds configuration for the Azure Cognitive Services
// voice source. SubscriptionKey and Region are required; APIBaseURL
// overrides the regional endpoint, which tests use to point at a stub.
type MicrosoftConfig struct {
	SubscriptionKey string
	Region          string
	APIBaseURL      string
}

// MicrosoftSource lists voices from the Azure Cognitive Services speech
// endpoint of the configured region.
type MicrosoftSource struct {
	subscriptionKey string
	listURL         string
	httpClient      *http.Client
	logger          *zap.Logger
}

var _ repositories.VoiceSource = (*MicrosoftSource)(nil)

// NewMicrosoftSource creates a new Azure voice source.
func NewMicrosoftSource(config MicrosoftConfig, logger *zap.Logger) (*MicrosoftSource, error) {
	if config.SubscriptionKey == "" {
		return nil, fmt.Errorf("microsoft subscription key is required")
	}
	if config.Region == "" && config.APIBaseURL == "" {
		return nil, fmt.Errorf("microsoft region is required")
	}

	listURL := config.APIBaseURL
	if listURL == "" {
		listURL = fmt.Sprintf("https://%s.tts.speech.microsoft.com", config.Region)
	}
	listURL += "/cognitiveservices/voices/list"

	return &MicrosoftSource{
		subscriptionKey: config.SubscriptionKey,
		listURL:         listURL,
		httpClient:      newHTTPClient(),
		logger:          logger,
	}, nil
}

type microsoftVoice struct {
	ShortName           string   `json:"ShortName"`
	DisplayName         string   `json:"DisplayName"`
	LocalName           string   `json:"LocalName"`
	Gender              string   `json:"Gender"`
	Locale              string   `json:"Locale"`
	SecondaryLocaleList []string `json:"SecondaryLocaleList"`
}

// GetVoices retrieves the available voices from the Azure voices/list
// endpoint.
func (s *MicrosoftSource) GetVoices(ctx context.Context) ([]entities.RawRecord, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.listURL, nil)
	if err != nil {
		return nil, &entities.ProviderError{Engine: "microsoft", Err: fmt.Errorf("failed to create HTTP request: %w", err)}
	}
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", s.subscriptionKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, &entities.ProviderError{Engine: "microsoft", Err: fmt.Errorf("failed to execute HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, &entities.ProviderError{Engine: "microsoft", Err: fmt.Errorf("API returned error %d: %s", resp.StatusCode, string(errorBody))}
	}

	var voices []microsoftVoice
	if err := json.NewDecoder(resp.Body).Decode(&voices); err != nil {
		return nil, &entities.ProviderError{Engine: "microsoft", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	records := make([]entities.RawRecord, 0, len(voices))
	for _, v := range voices {
		codes := append([]string{v.Locale}, v.SecondaryLocaleList...)
		record := entities.RawRecord{
			"id":             v.ShortName,
			"name":           v.DisplayName,
			"language_codes": codes,
		}
		if v.Gender != "" {
			record["gender"] = v.Gender
		}
		records = append(records, record)
	}

	s.logger.Info("Retrieved available voices", zap.String("engine", "microsoft"), zap.Int("count", len(records)))
	return records, nil
}

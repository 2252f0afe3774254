package providers

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/openvoicekit/voicecatalog/domain/entities"
	"github.com/openvoicekit/voicecatalog/domain/repositories"
)

// GoogleConfig holds configuration for the Google Cloud TTS voice source.
// CredentialsPath points at a service-account JSON file; when empty the
// client falls back to application default credentials.
type GoogleConfig struct {
	CredentialsPath string
}

// googleAPI is the slice of the Cloud TTS client this source uses. Tests
// substitute a fake.
type googleAPI interface {
	ListVoices(ctx context.Context, req *texttospeechpb.ListVoicesRequest, opts ...gax.CallOption) (*texttospeechpb.ListVoicesResponse, error)
}

// GoogleSource lists voices from the Google Cloud Text-to-Speech API.
type GoogleSource struct {
	client googleAPI
	logger *zap.Logger
}

var _ repositories.VoiceSource = (*GoogleSource)(nil)

// NewGoogleSource creates a new Google Cloud TTS voice source.
func NewGoogleSource(ctx context.Context, config GoogleConfig, logger *zap.Logger) (*GoogleSource, error) {
	var opts []option.ClientOption
	if config.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsPath))
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	return &GoogleSource{
		client: client,
		logger: logger,
	}, nil
}

// GetVoices retrieves the available voices from the Cloud TTS API.
func (s *GoogleSource) GetVoices(ctx context.Context) ([]entities.RawRecord, error) {
	resp, err := s.client.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{})
	if err != nil {
		return nil, &entities.ProviderError{Engine: "google", Err: fmt.Errorf("list voices failed: %w", err)}
	}

	records := make([]entities.RawRecord, 0, len(resp.Voices))
	for _, v := range resp.Voices {
		record := entities.RawRecord{
			"id":             v.Name,
			"name":           v.Name,
			"language_codes": append([]string(nil), v.LanguageCodes...),
		}
		if gender := ssmlGenderName(v.SsmlGender); gender != "" {
			record["gender"] = gender
		}
		records = append(records, record)
	}

	s.logger.Info("Retrieved available voices", zap.String("engine", "google"), zap.Int("count", len(records)))
	return records, nil
}

func ssmlGenderName(g texttospeechpb.SsmlVoiceGender) string {
	switch g {
	case texttospeechpb.SsmlVoiceGender_MALE:
		return "Male"
	case texttospeechpb.SsmlVoiceGender_FEMALE:
		return "Female"
	case texttospeechpb.SsmlVoiceGender_NEUTRAL:
		return "Neutral"
	}
	return ""
}

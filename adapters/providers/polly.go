package providers

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"go.uber.org/zap"

	"github.com/openvoicekit/voicecatalog/domain/entities"
	"github.com/openvoicekit/voicecatalog/domain/repositories"
)

// PollyConfig holds configuration for the Amazon Polly voice source.
// All three fields are required.
type PollyConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// pollyAPI is the slice of the Polly client this source uses. Tests
// substitute a fake.
type pollyAPI interface {
	DescribeVoices(ctx context.Context, params *polly.DescribeVoicesInput, optFns ...func(*polly.Options)) (*polly.DescribeVoicesOutput, error)
}

// PollySource lists voices from Amazon Polly via the AWS SDK.
type PollySource struct {
	client pollyAPI
	logger *zap.Logger
}

var _ repositories.VoiceSource = (*PollySource)(nil)

// NewPollySource creates a new Polly voice source with static credentials.
func NewPollySource(ctx context.Context, config PollyConfig, logger *zap.Logger) (*PollySource, error) {
	if config.Region == "" || config.AccessKeyID == "" || config.SecretAccessKey == "" {
		return nil, fmt.Errorf("polly region and credentials are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(config.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &PollySource{
		client: polly.NewFromConfig(awsCfg),
		logger: logger,
	}, nil
}

// GetVoices retrieves the available voices from Polly, following the
// paginated DescribeVoices API to the end.
func (s *PollySource) GetVoices(ctx context.Context) ([]entities.RawRecord, error) {
	var records []entities.RawRecord
	var nextToken *string

	for {
		out, err := s.client.DescribeVoices(ctx, &polly.DescribeVoicesInput{NextToken: nextToken})
		if err != nil {
			return nil, &entities.ProviderError{Engine: "polly", Err: fmt.Errorf("describe voices failed: %w", err)}
		}

		for _, v := range out.Voices {
			codes := []string{string(v.LanguageCode)}
			for _, extra := range v.AdditionalLanguageCodes {
				codes = append(codes, string(extra))
			}
			record := entities.RawRecord{
				"id":             string(v.Id),
				"name":           aws.ToString(v.Name),
				"language_codes": codes,
			}
			if v.Gender != "" {
				record["gender"] = string(v.Gender)
			}
			records = append(records, record)
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	s.logger.Info("Retrieved available voices", zap.String("engine", "polly"), zap.Int("count", len(records)))
	return records, nil
}

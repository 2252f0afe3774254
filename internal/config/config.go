// Package config reads service configuration from the environment.
// Provider credentials keep the variable names the deployment already uses;
// the service treats them as opaque strings and hands them to the matching
// voice source untouched.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config is the process configuration, resolved once at startup.
type Config struct {
	Port        string
	TTSDataDir  string
	GeoDataPath string

	Polly      PollyCredentials
	Google     GoogleCredentials
	Microsoft  MicrosoftCredentials
	Watson     WatsonCredentials
	ElevenLabs ElevenLabsCredentials
	WitAi      WitAiCredentials
	PlayHT     PlayHTCredentials
}

type PollyCredentials struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type GoogleCredentials struct {
	CredentialsPath string
}

type MicrosoftCredentials struct {
	Token  string
	Region string
}

type WatsonCredentials struct {
	APIKey     string
	Region     string
	InstanceID string
}

type ElevenLabsCredentials struct {
	APIKey string
}

type WitAiCredentials struct {
	Token string
}

type PlayHTCredentials struct {
	APIKey string
	UserID string
}

// Load builds the configuration from environment variables. When
// DEVELOPMENT=true a local .env file is read first so credentials do not
// have to live in the shell.
func Load(logger *zap.Logger) Config {
	if os.Getenv("DEVELOPMENT") == "true" || os.Getenv("DEVELOPMENT") == "True" {
		if err := godotenv.Load(); err == nil {
			logger.Info("Loaded development credentials from .env")
		}
	}

	return Config{
		Port:        envOr("PORT", "8080"),
		TTSDataDir:  envOr("TTS_DATA_DIR", "./tts-data"),
		GeoDataPath: envOr("GEO_DATA_PATH", "./geo-data.json"),

		Polly: PollyCredentials{
			Region:          os.Getenv("POLLY_REGION"),
			AccessKeyID:     os.Getenv("POLLY_AWS_KEY_ID"),
			SecretAccessKey: os.Getenv("POLLY_AWS_ACCESS_KEY"),
		},
		Google: GoogleCredentials{
			CredentialsPath: os.Getenv("GOOGLE_CREDS_PATH"),
		},
		Microsoft: MicrosoftCredentials{
			Token:  os.Getenv("MICROSOFT_TOKEN"),
			Region: os.Getenv("MICROSOFT_REGION"),
		},
		Watson: WatsonCredentials{
			APIKey:     os.Getenv("WATSON_API_KEY"),
			Region:     os.Getenv("WATSON_REGION"),
			InstanceID: os.Getenv("WATSON_INSTANCE_ID"),
		},
		ElevenLabs: ElevenLabsCredentials{
			APIKey: os.Getenv("ELEVENLABS_API_KEY"),
		},
		WitAi: WitAiCredentials{
			Token: os.Getenv("WITAI_TOKEN"),
		},
		PlayHT: PlayHTCredentials{
			APIKey: os.Getenv("PLAYHT_API_KEY"),
			UserID: os.Getenv("PLAYHT_USER_ID"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

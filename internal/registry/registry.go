// Package registry maps engine identifiers to their voice sources. An
// engine resolves to a static voice dump when one exists on disk, and to a
// live provider client otherwise.
package registry

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/openvoicekit/voicecatalog/adapters/providers"
	"github.com/openvoicekit/voicecatalog/domain/entities"
	"github.com/openvoicekit/voicecatalog/domain/repositories"
	"github.com/openvoicekit/voicecatalog/internal/config"
)

// baselineEngines is the fixed set of engines the service always exposes.
// Directory scanning can extend this list at startup with locally dumped
// engines, never shrink it.
var baselineEngines = []string{
	"polly", "google", "microsoft", "watson", "elevenlabs",
	"witai", "sherpaonnx", "playht",
}

// liveConstructor builds a live voice source from configured credentials.
type liveConstructor func(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.VoiceSource, error)

// liveConstructors is the extension point for new hosted engines: add the
// identifier here and to baselineEngines. sherpaonnx is absent on purpose,
// it is a local synthesizer that only ever has a static dump.
var liveConstructors = map[string]liveConstructor{
	"polly": func(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.VoiceSource, error) {
		return providers.NewPollySource(ctx, providers.PollyConfig{
			Region:          cfg.Polly.Region,
			AccessKeyID:     cfg.Polly.AccessKeyID,
			SecretAccessKey: cfg.Polly.SecretAccessKey,
		}, logger)
	},
	"google": func(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.VoiceSource, error) {
		return providers.NewGoogleSource(ctx, providers.GoogleConfig{
			CredentialsPath: cfg.Google.CredentialsPath,
		}, logger)
	},
	"microsoft": func(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.VoiceSource, error) {
		return providers.NewMicrosoftSource(providers.MicrosoftConfig{
			SubscriptionKey: cfg.Microsoft.Token,
			Region:          cfg.Microsoft.Region,
		}, logger)
	},
	"watson": func(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.VoiceSource, error) {
		return providers.NewWatsonSource(providers.WatsonConfig{
			APIKey:     cfg.Watson.APIKey,
			Region:     cfg.Watson.Region,
			InstanceID: cfg.Watson.InstanceID,
		}, logger)
	},
	"elevenlabs": func(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.VoiceSource, error) {
		return providers.NewElevenLabsSource(providers.ElevenLabsConfig{
			APIKey: cfg.ElevenLabs.APIKey,
		}, logger)
	},
	"witai": func(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.VoiceSource, error) {
		return providers.NewWitAiSource(providers.WitAiConfig{
			Token: cfg.WitAi.Token,
		}, logger)
	},
	"playht": func(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.VoiceSource, error) {
		return providers.NewPlayHTSource(providers.PlayHTConfig{
			APIKey: cfg.PlayHT.APIKey,
			UserID: cfg.PlayHT.UserID,
		}, logger)
	},
}

// Registry is the engine catalog. It is built once at startup and
// read-only afterwards.
type Registry struct {
	cfg         config.Config
	engines     []string
	staticFiles map[string]string
	logger      *zap.Logger
}

// New builds the registry: the baseline engine set plus any engine with a
// <engine>.json dump in the static data directory. A missing directory is
// not an error, the service just runs without local dumps.
func New(cfg config.Config, logger *zap.Logger) *Registry {
	engines := append([]string(nil), baselineEngines...)
	staticFiles := make(map[string]string)

	dirEntries, err := os.ReadDir(cfg.TTSDataDir)
	if err != nil {
		logger.Warn("Static voice dump directory not readable",
			zap.String("dir", cfg.TTSDataDir),
			zap.Error(err))
	}
	for _, entry := range dirEntries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		engine := strings.TrimSuffix(name, ".json")
		staticFiles[engine] = filepath.Join(cfg.TTSDataDir, name)
		if !contains(engines, engine) {
			engines = append(engines, engine)
		}
	}

	logger.Info("Engine registry initialized",
		zap.Strings("engines", engines),
		zap.Int("staticDumps", len(staticFiles)))

	return &Registry{
		cfg:         cfg,
		engines:     engines,
		staticFiles: staticFiles,
		logger:      logger,
	}
}

// Engines returns the known engine identifiers in stable registration
// order: baseline engines first, then discovered dumps.
func (r *Registry) Engines() []string {
	return append([]string(nil), r.engines...)
}

// IsKnown reports whether the engine identifier is in the registry.
func (r *Registry) IsKnown(engine string) bool {
	return contains(r.engines, engine)
}

// Resolve returns the voice source for an engine, preferring a static dump
// over a live client. An identifier with neither fails with
// UnsupportedEngineError.
func (r *Registry) Resolve(ctx context.Context, engine string) (repositories.VoiceSource, error) {
	if path, ok := r.staticFiles[engine]; ok {
		return providers.NewStaticFileSource(engine, path, r.logger), nil
	}

	construct, ok := liveConstructors[engine]
	if !ok {
		return nil, &entities.UnsupportedEngineError{Engine: engine, Known: r.Engines()}
	}

	r.logger.Info("Creating live client", zap.String("engine", engine))
	return construct(ctx, r.cfg, r.logger)
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

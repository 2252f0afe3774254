package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/openvoicekit/voicecatalog/domain/entities"
	"github.com/openvoicekit/voicecatalog/domain/repositories"
)

// StaticFileSource serves voices for engines that have a pre-dumped
// <engine>.json file instead of a live API, such as local synthesizers
// whose catalogs are generated offline.
type StaticFileSource struct {
	engine string
	path   string
	logger *zap.Logger
}

var _ repositories.VoiceSource = (*StaticFileSource)(nil)

// NewStaticFileSource creates a source backed by a JSON array of raw voice
// records at path.
func NewStaticFileSource(engine, path string, logger *zap.Logger) *StaticFileSource {
	return &StaticFileSource{
		engine: engine,
		path:   path,
		logger: logger,
	}
}

// GetVoices reads and decodes the engine's voice dump.
func (s *StaticFileSource) GetVoices(ctx context.Context) ([]entities.RawRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &entities.ProviderError{Engine: s.engine, Err: fmt.Errorf("failed to read voice dump: %w", err)}
	}

	var records []entities.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &entities.ProviderError{Engine: s.engine, Err: fmt.Errorf("failed to parse voice dump %s: %w", s.path, err)}
	}

	s.logger.Debug("Loaded voices from static dump",
		zap.String("engine", s.engine),
		zap.String("path", s.path),
		zap.Int("count", len(records)))
	return records, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/openvoicekit/voicecatalog/domain/entities"
	"github.com/openvoicekit/voicecatalog/domain/repositories"
)

// defaultPageSize is applied when a caller passes a negative page size.
const defaultPageSize = 50

// EngineRegistry is the catalog service's view of the provider registry.
type EngineRegistry interface {
	Engines() []string
	IsKnown(engine string) bool
	Resolve(ctx context.Context, engine string) (repositories.VoiceSource, error)
}

// VoiceCache is the catalog service's view of the voice cache.
type VoiceCache interface {
	Get(engine string) ([]entities.Voice, bool)
	Put(engine string, voices []entities.Voice)
}

// QueryParams are the query-endpoint parameters after binding and
// defaulting.
type QueryParams struct {
	Engine      string
	LangCode    string
	LangName    string
	Name        string
	Gender      string
	Page        int
	PageSize    int
	IgnoreCache bool
}

// CatalogService orchestrates per-engine fetch-or-cache, merges results
// across engines, applies filters, and paginates.
type CatalogService struct {
	registry   EngineRegistry
	cache      VoiceCache
	normalizer *Normalizer
	logger     *zap.Logger
	group      singleflight.Group
}

// NewCatalogService creates the aggregation service.
func NewCatalogService(registry EngineRegistry, cache VoiceCache, normalizer *Normalizer, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		registry:   registry,
		cache:      cache,
		normalizer: normalizer,
		logger:     logger,
	}
}

// QueryVoices answers one catalog query. With an engine it fetches that
// engine alone and propagates its failure; without one it fans out over
// every known engine and skips the ones that fail.
func (s *CatalogService) QueryVoices(ctx context.Context, params QueryParams) ([]entities.Voice, error) {
	var voices []entities.Voice

	if params.Engine != "" {
		engine := strings.ToLower(params.Engine)
		if !s.registry.IsKnown(engine) {
			return nil, &entities.UnsupportedEngineError{Engine: params.Engine, Known: s.registry.Engines()}
		}
		fetched, err := s.engineVoices(ctx, engine, params.IgnoreCache)
		if err != nil {
			return nil, err
		}
		voices = fetched
	} else {
		voices = s.allEngineVoices(ctx, params.IgnoreCache)
	}

	filtered := filterVoices(voices, params)
	return paginate(filtered, params.Page, params.PageSize), nil
}

// Engines returns the known engine identifiers.
func (s *CatalogService) Engines() []string {
	return s.registry.Engines()
}

// engineVoices returns one engine's normalized voices, cache-first.
// Population is single-flighted per engine so concurrent misses share one
// fetch instead of interleaving writes.
func (s *CatalogService) engineVoices(ctx context.Context, engine string, ignoreCache bool) ([]entities.Voice, error) {
	if !ignoreCache {
		if cached, ok := s.cache.Get(engine); ok {
			return cached, nil
		}
	}

	result, err, _ := s.group.Do(engine, func() (interface{}, error) {
		voices, err := s.fetchVoices(ctx, engine)
		if err != nil {
			return nil, err
		}
		if !ignoreCache {
			s.cache.Put(engine, voices)
		}
		return voices, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]entities.Voice), nil
}

// fetchVoices resolves the engine's source, fetches raw records, and
// normalizes them.
func (s *CatalogService) fetchVoices(ctx context.Context, engine string) ([]entities.Voice, error) {
	fetchID := uuid.NewString()
	s.logger.Info("Fetching voices from source",
		zap.String("engine", engine),
		zap.String("fetchID", fetchID))

	source, err := s.registry.Resolve(ctx, engine)
	if err != nil {
		if entities.IsUnsupportedEngine(err) {
			return nil, err
		}
		// Construction failures (bad or missing credentials) count as
		// provider failures, not unknown engines.
		return nil, &entities.ProviderError{Engine: engine, Err: fmt.Errorf("failed to construct client: %w", err)}
	}

	records, err := source.GetVoices(ctx)
	if err != nil {
		return nil, err
	}

	voices := make([]entities.Voice, 0, len(records))
	for _, record := range records {
		voices = append(voices, s.normalizer.Normalize(engine, record))
	}

	s.logger.Info("Fetched voices",
		zap.String("engine", engine),
		zap.String("fetchID", fetchID),
		zap.Int("count", len(voices)))
	return voices, nil
}

// allEngineVoices fetches every known engine concurrently. Results are
// buffered per engine and reassembled in registry order so the merged list
// is deterministic regardless of completion order. Failing engines are
// logged and skipped.
func (s *CatalogService) allEngineVoices(ctx context.Context, ignoreCache bool) []entities.Voice {
	engines := s.registry.Engines()
	results := make([][]entities.Voice, len(engines))

	var wg sync.WaitGroup
	for i, engine := range engines {
		wg.Add(1)
		go func(slot int, engine string) {
			defer wg.Done()
			voices, err := s.engineVoices(ctx, engine, ignoreCache)
			if err != nil {
				s.logger.Error("Failed to fetch voices for engine, skipping",
					zap.String("engine", engine),
					zap.Error(err))
				return
			}
			results[slot] = voices
		}(i, engine)
	}
	wg.Wait()

	var merged []entities.Voice
	for _, voices := range results {
		merged = append(merged, voices...)
	}
	return merged
}

// filterVoices applies the query filters in fixed order. Every filter only
// narrows the set; comparisons are case-insensitive throughout.
func filterVoices(voices []entities.Voice, params QueryParams) []entities.Voice {
	filtered := voices

	if params.LangCode != "" {
		query := strings.ToLower(params.LangCode)
		filtered = keep(filtered, func(v entities.Voice) bool {
			for _, lang := range v.Languages {
				if strings.ToLower(lang.LanguageCode) == query {
					return true
				}
			}
			return false
		})
	}

	if params.LangName != "" {
		query := strings.ToLower(params.LangName)
		filtered = keep(filtered, func(v entities.Voice) bool {
			for _, lang := range v.Languages {
				if fuzzyContains(strings.ToLower(lang.Language), query) {
					return true
				}
			}
			return false
		})
	}

	if params.Name != "" {
		query := strings.ToLower(params.Name)
		filtered = keep(filtered, func(v entities.Voice) bool {
			return strings.Contains(strings.ToLower(v.Name), query)
		})
	}

	if params.Gender != "" {
		filtered = keep(filtered, func(v entities.Voice) bool {
			// A voice without a gender never matches a gender filter.
			return v.Gender != nil && strings.EqualFold(*v.Gender, params.Gender)
		})
	}

	return filtered
}

func keep(voices []entities.Voice, match func(entities.Voice) bool) []entities.Voice {
	kept := make([]entities.Voice, 0, len(voices))
	for _, v := range voices {
		if match(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

// paginate slices the filtered list. Pages are 1-indexed; page size 0
// disables pagination; out-of-range pages yield an empty list.
func paginate(voices []entities.Voice, page, pageSize int) []entities.Voice {
	if pageSize == 0 {
		return voices
	}
	if pageSize < 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(voices) {
		return []entities.Voice{}
	}
	end := start + pageSize
	if end > len(voices) {
		end = len(voices)
	}
	return voices[start:end]
}

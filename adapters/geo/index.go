// Package geo loads the language-code geo table and answers coordinate
// lookups for voice enrichment.
package geo

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/openvoicekit/voicecatalog/domain/entities"
)

// Index is the in-memory geo table, keyed by language code. It is loaded
// once at startup and read-only afterwards, so concurrent lookups need no
// locking.
type Index struct {
	entries map[string]entities.GeoEntry
}

// sentinel is returned for language codes the table does not know.
// Enrichment is best-effort; a miss is not an error.
var sentinel = entities.GeoEntry{Latitude: 0.0, Longitude: 0.0, Language: "Unknown"}

// NewIndexFromFile reads the geo table from a JSON array of
// {language_id, latitude, longitude, language} records.
func NewIndexFromFile(path string, logger *zap.Logger) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read geo data file: %w", err)
	}

	var records []entities.GeoEntry
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse geo data file %s: %w", path, err)
	}

	idx := NewIndex(records)
	logger.Info("Loaded geo data",
		zap.String("path", path),
		zap.Int("entries", len(records)))
	return idx, nil
}

// NewIndex builds an index from already-decoded geo entries.
func NewIndex(records []entities.GeoEntry) *Index {
	entries := make(map[string]entities.GeoEntry, len(records))
	for _, rec := range records {
		entries[rec.LanguageCode] = rec
	}
	return &Index{entries: entries}
}

// Lookup returns the geo entry for a language code, or the sentinel entry
// when the code is not in the table.
func (i *Index) Lookup(languageCode string) entities.GeoEntry {
	if entry, ok := i.entries[languageCode]; ok {
		return entry
	}
	out := sentinel
	out.LanguageCode = languageCode
	return out
}

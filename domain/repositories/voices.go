package repositories

import (
	"context"

	"github.com/openvoicekit/voicecatalog/domain/entities"
)

// VoiceSource abstracts one engine's voice listing, whether it comes from a
// live provider API or a pre-dumped static file.
type VoiceSource interface {
	// GetVoices returns the engine's raw voice records. Records are
	// provider-shaped; the caller normalizes them into Voice entities.
	GetVoices(ctx context.Context) ([]entities.RawRecord, error)
}

// GeoIndex resolves a language code to geographic metadata. Lookups never
// fail: an unknown code yields the sentinel entry {0, 0, "Unknown"}.
type GeoIndex interface {
	Lookup(languageCode string) entities.GeoEntry
}

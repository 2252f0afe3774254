package usecase

import (
	"github.com/openvoicekit/voicecatalog/domain/entities"
	"github.com/openvoicekit/voicecatalog/domain/repositories"
)

// Normalizer converts provider-shaped raw records into canonical Voice
// entities, attaching geo-enriched language entries.
type Normalizer struct {
	geo repositories.GeoIndex
}

// NewNormalizer creates a normalizer backed by the given geo index.
func NewNormalizer(geo repositories.GeoIndex) *Normalizer {
	return &Normalizer{geo: geo}
}

// Normalize builds a Voice from a raw record. It never fails: a record
// missing id or name still produces a (degenerate) Voice so the gap is
// visible to callers instead of silently dropped. Language entries keep
// the raw code order, duplicates included.
func (n *Normalizer) Normalize(engine string, raw entities.RawRecord) entities.Voice {
	codes := raw.LanguageCodes()
	languages := make([]entities.VoiceLanguage, 0, len(codes))
	for _, code := range codes {
		geo := n.geo.Lookup(code)
		languages = append(languages, entities.VoiceLanguage{
			LanguageCode: code,
			Latitude:     geo.Latitude,
			Longitude:    geo.Longitude,
			Language:     geo.Language,
		})
	}

	return entities.Voice{
		ID:        raw.StringField("id"),
		Name:      raw.StringField("name"),
		Gender:    raw.GenderField(),
		Engine:    engine,
		Languages: languages,
	}
}

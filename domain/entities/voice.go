package entities

// Voice is the canonical voice entity served by the catalog. Every voice
// carries the identifier of the engine it was fetched under; the engine
// field is set once at normalization time and never changes afterwards.
type Voice struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Gender    *string         `json:"gender"`
	Engine    string          `json:"engine"`
	Languages []VoiceLanguage `json:"languages"`
}

// VoiceLanguage is one language a voice speaks, enriched with the
// geographic coordinates of the region the language code refers to.
// A voice has one entry per raw language code the provider reported,
// in source order, duplicates included.
type VoiceLanguage struct {
	LanguageCode string  `json:"language_code"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Language     string  `json:"language"`
}

// GeoEntry is one row of the language-code geo table.
type GeoEntry struct {
	LanguageCode string  `json:"language_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Language     string  `json:"language"`
}

// RawRecord is a provider-native voice record before normalization.
// Provider schemas differ, so records stay loosely typed until they cross
// the normalization boundary; every downstream component operates on Voice.
type RawRecord map[string]interface{}

// StringField returns the named field as a string, or "" when the field is
// absent or not a string.
func (r RawRecord) StringField(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// GenderField returns the record's gender as a pointer, nil when absent or
// empty. An empty string never leaks into a Voice.
func (r RawRecord) GenderField() *string {
	g := r.StringField("gender")
	if g == "" {
		return nil
	}
	return &g
}

// LanguageCodes returns the record's language_codes list in source order.
// Both []string and []interface{} shapes are accepted since static dumps
// decode to the latter.
func (r RawRecord) LanguageCodes() []string {
	switch v := r["language_codes"].(type) {
	case []string:
		return v
	case []interface{}:
		codes := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				codes = append(codes, s)
			}
		}
		return codes
	}
	return nil
}

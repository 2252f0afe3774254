package geo

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/openvoicekit/voicecatalog/domain/entities"
)

func TestIndexLookup(t *testing.T) {
	idx := NewIndex([]entities.GeoEntry{
		{LanguageCode: "en-US", Latitude: 37.0902, Longitude: -95.7129, Language: "English (United States)"},
		{LanguageCode: "fr-FR", Latitude: 46.2276, Longitude: 2.2137, Language: "French (France)"},
	})

	entry := idx.Lookup("fr-FR")
	if entry.Language != "French (France)" {
		t.Errorf("Expected language 'French (France)', got %q", entry.Language)
	}
	if entry.Latitude != 46.2276 || entry.Longitude != 2.2137 {
		t.Errorf("Unexpected coordinates: %f, %f", entry.Latitude, entry.Longitude)
	}
}

func TestIndexLookupMissReturnsSentinel(t *testing.T) {
	idx := NewIndex(nil)

	entry := idx.Lookup("xx-XX")
	if entry.Language != "Unknown" {
		t.Errorf("Expected sentinel language 'Unknown', got %q", entry.Language)
	}
	if entry.Latitude != 0.0 || entry.Longitude != 0.0 {
		t.Errorf("Expected sentinel coordinates 0, 0, got %f, %f", entry.Latitude, entry.Longitude)
	}
	if entry.LanguageCode != "xx-XX" {
		t.Errorf("Expected queried code to be preserved, got %q", entry.LanguageCode)
	}
}

func TestNewIndexFromFile(t *testing.T) {
	logger := zaptest.NewLogger(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "geo-data.json")
	content := `[{"language_id": "de-DE", "latitude": 51.1657, "longitude": 10.4515, "language": "German (Germany)"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write geo data fixture: %v", err)
	}

	idx, err := NewIndexFromFile(path, logger)
	if err != nil {
		t.Fatalf("Failed to load geo index: %v", err)
	}

	entry := idx.Lookup("de-DE")
	if entry.Language != "German (Germany)" {
		t.Errorf("Expected 'German (Germany)', got %q", entry.Language)
	}
}

func TestNewIndexFromFileMissing(t *testing.T) {
	logger := zaptest.NewLogger(t)

	if _, err := NewIndexFromFile(filepath.Join(t.TempDir(), "absent.json"), logger); err == nil {
		t.Error("Expected error for missing geo data file")
	}
}

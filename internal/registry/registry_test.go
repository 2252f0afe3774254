package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/openvoicekit/voicecatalog/adapters/providers"
	"github.com/openvoicekit/voicecatalog/domain/entities"
	"github.com/openvoicekit/voicecatalog/internal/config"
)

func writeDump(t *testing.T, dir, engine string) {
	t.Helper()
	path := filepath.Join(dir, engine+".json")
	if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
		t.Fatalf("Failed to write dump for %s: %v", engine, err)
	}
}

func TestNewDiscoversStaticDumps(t *testing.T) {
	logger := zaptest.NewLogger(t)
	dir := t.TempDir()
	writeDump(t, dir, "espeak")
	writeDump(t, dir, "sherpaonnx")

	r := New(config.Config{TTSDataDir: dir}, logger)

	engines := r.Engines()
	// Baseline engines stay first; espeak is appended by discovery.
	if engines[0] != "polly" {
		t.Errorf("Expected baseline order to start with polly, got %s", engines[0])
	}
	if engines[len(engines)-1] != "espeak" {
		t.Errorf("Expected discovered engine appended last, got %s", engines[len(engines)-1])
	}
	if !r.IsKnown("espeak") {
		t.Error("Expected espeak to be known after discovery")
	}
	// sherpaonnx is already baseline and must not be duplicated.
	count := 0
	for _, e := range engines {
		if e == "sherpaonnx" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected sherpaonnx exactly once, got %d", count)
	}
}

func TestNewWithMissingDirectory(t *testing.T) {
	logger := zaptest.NewLogger(t)

	r := New(config.Config{TTSDataDir: filepath.Join(t.TempDir(), "absent")}, logger)

	if len(r.Engines()) != len(baselineEngines) {
		t.Errorf("Expected baseline engines only, got %v", r.Engines())
	}
}

func TestResolvePrefersStaticDump(t *testing.T) {
	logger := zaptest.NewLogger(t)
	dir := t.TempDir()
	writeDump(t, dir, "elevenlabs")

	r := New(config.Config{TTSDataDir: dir}, logger)

	source, err := r.Resolve(context.Background(), "elevenlabs")
	if err != nil {
		t.Fatalf("Failed to resolve: %v", err)
	}
	if _, ok := source.(*providers.StaticFileSource); !ok {
		t.Errorf("Expected static file source when a dump exists, got %T", source)
	}
}

func TestResolveLiveClient(t *testing.T) {
	logger := zaptest.NewLogger(t)
	cfg := config.Config{
		TTSDataDir: t.TempDir(),
		ElevenLabs: config.ElevenLabsCredentials{APIKey: "test-key"},
	}

	r := New(cfg, logger)

	source, err := r.Resolve(context.Background(), "elevenlabs")
	if err != nil {
		t.Fatalf("Failed to resolve: %v", err)
	}
	if _, ok := source.(*providers.ElevenLabsSource); !ok {
		t.Errorf("Expected live ElevenLabs source, got %T", source)
	}
}

func TestResolveUnsupportedEngine(t *testing.T) {
	logger := zaptest.NewLogger(t)

	r := New(config.Config{TTSDataDir: t.TempDir()}, logger)

	_, err := r.Resolve(context.Background(), "not-a-real-engine")
	if err == nil {
		t.Fatal("Expected error for unsupported engine")
	}
	if !entities.IsUnsupportedEngine(err) {
		t.Errorf("Expected UnsupportedEngineError, got %v", err)
	}
}

func TestResolveSherpaOnnxWithoutDump(t *testing.T) {
	logger := zaptest.NewLogger(t)

	r := New(config.Config{TTSDataDir: t.TempDir()}, logger)

	// sherpaonnx is a known engine but has no live client; without a dump
	// it cannot be resolved.
	if !r.IsKnown("sherpaonnx") {
		t.Fatal("Expected sherpaonnx to be a known engine")
	}
	if _, err := r.Resolve(context.Background(), "sherpaonnx"); !entities.IsUnsupportedEngine(err) {
		t.Errorf("Expected UnsupportedEngineError, got %v", err)
	}
}

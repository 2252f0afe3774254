// Command voicedump fetches an engine's live voice list and writes it into
// the static dump directory as <engine>.json. The server then serves the
// engine from the dump instead of calling the provider, which is how local
// synthesizers and rate-limited providers get their catalogs refreshed
// out of band.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/openvoicekit/voicecatalog/internal/config"
	"github.com/openvoicekit/voicecatalog/internal/registry"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	engine := flag.String("engine", "", "engine identifier to dump")
	outDir := flag.String("out", "", "output directory (defaults to TTS_DATA_DIR)")
	flag.Parse()

	if *engine == "" {
		logger.Fatal("usage: voicedump -engine <engine> [-out <dir>]")
	}

	cfg := config.Load(logger)
	if *outDir != "" {
		cfg.TTSDataDir = *outDir
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// Resolve against an empty data directory so an existing dump does not
	// shadow the live client we are trying to refresh from.
	liveCfg := cfg
	liveCfg.TTSDataDir = ""
	source, err := registry.New(liveCfg, logger).Resolve(ctx, *engine)
	if err != nil {
		logger.Fatal("failed to resolve engine", zap.String("engine", *engine), zap.Error(err))
	}

	records, err := source.GetVoices(ctx)
	if err != nil {
		logger.Fatal("failed to fetch voices", zap.String("engine", *engine), zap.Error(err))
	}

	if err := os.MkdirAll(cfg.TTSDataDir, 0o755); err != nil {
		logger.Fatal("failed to create output directory", zap.Error(err))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		logger.Fatal("failed to encode voices", zap.Error(err))
	}

	outPath := filepath.Join(cfg.TTSDataDir, *engine+".json")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		logger.Fatal("failed to write dump", zap.String("path", outPath), zap.Error(err))
	}

	logger.Info("Wrote voice dump",
		zap.String("engine", *engine),
		zap.String("path", outPath),
		zap.Int("count", len(records)))
}

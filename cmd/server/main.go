package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/openvoicekit/voicecatalog/adapters/geo"
	"github.com/openvoicekit/voicecatalog/internal/api"
	"github.com/openvoicekit/voicecatalog/internal/cache"
	"github.com/openvoicekit/voicecatalog/internal/config"
	"github.com/openvoicekit/voicecatalog/internal/registry"
	"github.com/openvoicekit/voicecatalog/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load(logger)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Load the geo table and build the engine registry
	geoIndex, err := geo.NewIndexFromFile(cfg.GeoDataPath, logger)
	if err != nil {
		logger.Fatal("failed to load geo data", zap.Error(err))
	}
	engineRegistry := registry.New(cfg, logger)

	// Initialize the catalog service with a process-wide cache instance
	voiceCache := cache.New()
	catalog := usecase.NewCatalogService(engineRegistry, voiceCache, usecase.NewNormalizer(geoIndex), logger)

	// Initialize API routes
	api.InitRoutes(e, catalog, logger)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Voice catalog server started",
		zap.String("port", cfg.Port),
		zap.Strings("engines", engineRegistry.Engines()))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

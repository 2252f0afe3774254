package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/openvoicekit/voicecatalog/domain/entities"
	"github.com/openvoicekit/voicecatalog/usecase"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
)

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, catalog *usecase.CatalogService, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "voice-catalog",
		})
	})

	e.GET("/voices", func(c echo.Context) error {
		return getVoices(c, catalog, logger)
	})

	e.GET("/engines", func(c echo.Context) error {
		return c.JSON(http.StatusOK, catalog.Engines())
	})
}

func getVoices(c echo.Context, catalog *usecase.CatalogService, logger *zap.Logger) error {
	var req VoicesQuery
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind voices query", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid query parameters",
		})
	}

	params := usecase.QueryParams{
		Engine:      req.Engine,
		LangCode:    req.LangCode,
		LangName:    req.LangName,
		Name:        req.Name,
		Gender:      req.Gender,
		Page:        defaultPage,
		PageSize:    defaultPageSize,
		IgnoreCache: req.IgnoreCache,
	}
	if req.Page != nil {
		params.Page = *req.Page
	}
	if req.PageSize != nil {
		params.PageSize = *req.PageSize
	}

	voices, err := catalog.QueryVoices(c.Request().Context(), params)
	if err != nil {
		var unsupported *entities.UnsupportedEngineError
		if errors.As(err, &unsupported) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "unsupported_engine",
				Message: unsupported.Error(),
			})
		}

		logger.Error("Voice query failed",
			zap.String("engine", req.Engine),
			zap.Error(err))
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "provider_error",
			Message: err.Error(),
		})
	}

	if voices == nil {
		voices = []entities.Voice{}
	}
	return c.JSON(http.StatusOK, voices)
}

// Package main is the entry point for the sailing listing service.
//
//	@title						Sailing Listing API
//	@version					1.0.0
//	@description				Lists cruise sailings from the configured upstream: deduplicated, sorted and paginated, with an iCalendar export.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/sailing-search/sailing-listing-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/sailing-search/sailing-listing-service/docs"

	// Application layers
	sailinghttp "github.com/sailing-search/sailing-listing-service/internal/adapter/http"
	"github.com/sailing-search/sailing-listing-service/internal/adapter/http/middleware"
	"github.com/sailing-search/sailing-listing-service/internal/adapter/source"
	"github.com/sailing-search/sailing-listing-service/internal/config"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/logger"
	"github.com/sailing-search/sailing-listing-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(cfg.LoggerConfig())
	logger.SetGlobal(log)

	logger.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("remote_source", cfg.UsesAPI()).
		Msg("Configuration loaded")

	if cfg.IsProduction() && !cfg.UsesAPI() {
		logger.Warn().
			Str("fixture", cfg.Sources.FixturePath).
			Msg("SAILINGS_API_URL not set; serving the recorded fixture in production")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.WithComponent("http").Logger)

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupRoutes wires sources, the listing use case and the HTTP handler.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	sources := source.FromConfig(cfg.Sources)
	for _, s := range sources {
		logger.Info().Str("source", s.Name()).Msg("Sailing source configured")
	}

	ucConfig := &usecase.Config{
		FetchTimeout: cfg.Timeouts.Fetch,
		PageSize:     cfg.Listing.PageSize,
	}
	listUseCase := usecase.NewSailingListUseCase(sources, ucConfig, log.WithComponent("usecase"))

	sailingHandler := sailinghttp.NewSailingHandler(listUseCase, nil, nil)
	sailinghttp.RegisterRoutes(e, sailingHandler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}

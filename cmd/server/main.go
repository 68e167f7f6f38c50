// Package main is the entry point for the travel assistant service.
//
//	@title						Travel Assistant API
//	@version					1.0.0
//	@description				A conversational travel assistant that answers flight search queries over a static catalog and travel policy questions via retrieval-augmented generation.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/travel-assistant/travel-assistant-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/travel-assistant/travel-assistant-service/docs"

	assistanthttp "github.com/travel-assistant/travel-assistant-service/internal/adapter/http"
	"github.com/travel-assistant/travel-assistant-service/internal/adapter/http/middleware"
	"github.com/travel-assistant/travel-assistant-service/internal/agent"
	"github.com/travel-assistant/travel-assistant-service/internal/catalog"
	"github.com/travel-assistant/travel-assistant-service/internal/config"
	"github.com/travel-assistant/travel-assistant-service/internal/infrastructure/timeutil"
	"github.com/travel-assistant/travel-assistant-service/internal/search"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("flights_file", cfg.Data.FlightsFile).
		Msg("Configuration loaded")

	// Load the flight catalog. A missing or unparseable catalog is fatal:
	// the search capability cannot start without data.
	cat, err := catalog.Load(cfg.Data.FlightsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load flight catalog")
	}
	log.Info().Int("flights", cat.Len()).Msg("Flight catalog loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	setupRoutes(e, cfg, cat)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// setupRoutes wires the search pipeline and the orchestration shell into the
// HTTP handler and registers routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, cat *catalog.Catalog) {
	searcher := search.NewSearcher(cat, timeutil.NewRealClock(), cfg.Assistant.MaxResults)

	// The LLM and vector store are external collaborators; the agent degrades
	// to a fixed reply on policy questions until they are wired in.
	assistant := agent.New(searcher,
		agent.WithMaxHistoryTurns(cfg.Assistant.MaxHistoryTurns),
	)

	handler := assistanthttp.NewAssistantHandler(searcher, assistant)
	assistanthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}

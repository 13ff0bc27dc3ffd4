// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinequiz/internal/api"
	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/config"
	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/present"
	"github.com/tomtom215/cinequiz/internal/quiz"
	"github.com/tomtom215/cinequiz/internal/recommend"
	"github.com/tomtom215/cinequiz/internal/supervisor"
	"github.com/tomtom215/cinequiz/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LoggingSettings())

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("catalog_source", cfg.Catalog.Source).
		Bool("strict_validation", cfg.Quiz.StrictValidation).
		Int("top_n", cfg.Recommend.TopN).
		Msg("Configuration loaded")

	source, closeSource, err := newCatalogSource(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create catalog source")
	}
	defer func() {
		if err := closeSource(); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog source")
		}
	}()

	holder := catalog.NewHolder(logging.Logger())

	engine, err := recommend.NewEngine(cfg.EngineSettings(), holder, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	renderer, err := present.NewHTMLRenderer("/recommend")
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to parse page templates")
	}

	handler, err := api.NewHandler(api.HandlerConfig{
		Engine:    engine,
		Catalog:   holder,
		Collector: quiz.NewCollector(cfg.Quiz.StrictValidation),
		Renderer:  renderer,
		Timeout:   cfg.Server.Timeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create HTTP handler")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.IsProduction() && len(cfg.Security.CORSOrigins) == 1 && cfg.Security.CORSOrigins[0] == "*" {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
	}

	router := api.NewRouter(handler, api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewCatalogLoaderService(holder, source, cfg.Catalog.Timeout, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, services.DefaultShutdownTimeout, logging.Logger()))

	watchLogLevel()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}
	logging.Info().Msg("Supervisor tree stopped")

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	stats := engine.Stats()
	logging.Info().
		Int64("requests", stats.Requests).
		Int64("cache_hits", stats.CacheHits).
		Int64("cache_misses", stats.CacheMisses).
		Msg("Application stopped gracefully")
}

// watchLogLevel re-reads the configuration when the config file changes and
// applies a new log level. Other settings need a restart.
func watchLogLevel() {
	path := config.ConfigFilePath()
	if path == "" {
		return
	}
	err := config.WatchConfigFile(path, func() {
		cfg, err := config.Load()
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Ignoring invalid configuration change")
			return
		}
		logging.SetLevelString(cfg.Logging.Level)
		logging.Info().Str("level", cfg.Logging.Level).Msg("Log level reloaded")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch disabled")
	}
}

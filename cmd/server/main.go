// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

// Package main is the entry point for the crop recommendation server.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered defaults, config file, environment (Koanf v2)
//  2. Logging: zerolog with json or console output
//  3. Crop catalog: the built-in reference table of crop profiles
//  4. ML predictor (optional): HTTP client with circuit breaker protection,
//     enabled via PREDICTOR_ENABLED=true and PREDICTOR_URL
//  5. Recommendation engine: the scoring and ranking pipeline
//  6. HTTP server: REST API plus Prometheus /metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (HTTP_PORT, LOG_LEVEL, PREDICTOR_URL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops accepting
// new connections and waits for in-flight requests up to the configured
// shutdown timeout.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vikasreddy148/CropRecommendation/internal/api"
	"github.com/vikasreddy148/CropRecommendation/internal/catalog"
	"github.com/vikasreddy148/CropRecommendation/internal/config"
	"github.com/vikasreddy148/CropRecommendation/internal/engine"
	"github.com/vikasreddy148/CropRecommendation/internal/logging"
	"github.com/vikasreddy148/CropRecommendation/internal/predictor"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(cfg.Logging)
	logger := logging.Logger()

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load crop catalog: %w", err)
	}
	logging.Info().Int("crops", cat.Len()).Msg("crop catalog loaded")

	var opts []engine.Option
	if cfg.Predictor.Enabled {
		client, err := predictor.NewClient(predictor.Options{
			URL:         cfg.Predictor.URL,
			Timeout:     cfg.Predictor.Timeout,
			MaxFailures: cfg.Predictor.BreakerMaxFailures,
			Cooldown:    cfg.Predictor.BreakerCooldown,
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("build predictor client: %w", err)
		}
		opts = append(opts, engine.WithPredictor(client))
		logging.Info().Str("url", cfg.Predictor.URL).Msg("ml predictor enabled")
	} else {
		logging.Info().Msg("ml predictor disabled, using rule-based scoring")
	}

	eng, err := engine.NewEngine(cfg.EngineConfig(), cat, logger, opts...)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	handler := api.NewHandler(eng, cat, cfg.Predictor.Enabled, logger)
	router := api.NewRouter(handler, api.RouterConfig{
		RateLimitRequests: cfg.API.RateLimitRequests,
		RateLimitWindow:   cfg.API.RateLimitWindow,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logging.Info().Msg("server stopped")
	return nil
}

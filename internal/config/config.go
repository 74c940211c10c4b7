// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

// Package config loads and validates the application configuration from
// layered sources: built-in defaults, an optional YAML file, and environment
// variables, in ascending precedence.
package config

import (
	"fmt"
	"time"

	"github.com/vikasreddy148/CropRecommendation/internal/engine"
	"github.com/vikasreddy148/CropRecommendation/internal/logging"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Engine    EngineConfig    `koanf:"engine"`
	Predictor PredictorConfig `koanf:"predictor"`
	API       APIConfig       `koanf:"api"`
	Logging   logging.Config  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// Timeout bounds request handling, reads, and writes.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// EngineConfig holds the decision-engine tunables.
type EngineConfig struct {
	Weights       WeightsConfig `koanf:"weights"`
	DefaultK      int           `koanf:"default_k"`
	MaxK          int           `koanf:"max_k"`
	RotationYears int           `koanf:"rotation_years"`
}

// WeightsConfig holds the composite ranking weights. They must be
// non-negative and sum to 1.
type WeightsConfig struct {
	Compatibility  float64 `koanf:"compatibility"`
	Profit         float64 `koanf:"profit"`
	Sustainability float64 `koanf:"sustainability"`
	Rotation       float64 `koanf:"rotation"`
	Risk           float64 `koanf:"risk"`
}

// PredictorConfig holds the ML prediction service client settings. When
// disabled, the engine runs rule-based only.
type PredictorConfig struct {
	Enabled bool   `koanf:"enabled"`
	URL     string `koanf:"url"`

	// Timeout bounds a single prediction call.
	Timeout time.Duration `koanf:"timeout"`

	// BreakerMaxFailures opens the circuit after this many consecutive
	// failures.
	BreakerMaxFailures uint32 `koanf:"breaker_max_failures"`

	// BreakerCooldown is how long the circuit stays open before a probe.
	BreakerCooldown time.Duration `koanf:"breaker_cooldown"`
}

// APIConfig holds API-surface settings.
type APIConfig struct {
	// RateLimitRequests is the per-client request budget per window.
	// Zero disables rate limiting.
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
}

// EngineConfig converts the loaded values into the engine's own config type.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Weights: engine.Weights{
			Compatibility:  c.Engine.Weights.Compatibility,
			Profit:         c.Engine.Weights.Profit,
			Sustainability: c.Engine.Weights.Sustainability,
			Rotation:       c.Engine.Weights.Rotation,
			Risk:           c.Engine.Weights.Risk,
		},
		DefaultK:      c.Engine.DefaultK,
		MaxK:          c.Engine.MaxK,
		RotationYears: c.Engine.RotationYears,
	}
}

// Validate checks the whole configuration. It is called by Load; call it
// directly only when constructing a Config by hand.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d outside [1, 65535]", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}

	engineCfg := c.EngineConfig()
	if err := engineCfg.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	if c.Predictor.Enabled {
		if c.Predictor.URL == "" {
			return fmt.Errorf("predictor.url is required when the predictor is enabled")
		}
		if c.Predictor.Timeout <= 0 {
			return fmt.Errorf("predictor.timeout must be positive")
		}
	}

	if c.API.RateLimitRequests < 0 {
		return fmt.Errorf("api.rate_limit_requests must not be negative")
	}
	if c.API.RateLimitRequests > 0 && c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api.rate_limit_window must be positive when rate limiting is enabled")
	}

	return nil
}

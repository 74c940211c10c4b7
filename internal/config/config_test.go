// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Run from a temp dir so no stray config.yaml is picked up.
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 10, cfg.Engine.DefaultK)
	assert.Equal(t, 12, cfg.Engine.MaxK)
	assert.Equal(t, 0.35, cfg.Engine.Weights.Compatibility)
	assert.False(t, cfg.Predictor.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PREDICTOR_ENABLED", "true")
	t.Setenv("PREDICTOR_URL", "http://ml.internal:5000")
	t.Setenv("ENGINE_ROTATION_YEARS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Predictor.Enabled)
	assert.Equal(t, "http://ml.internal:5000", cfg.Predictor.URL)
	assert.Equal(t, 5, cfg.Engine.RotationYears)
}

func TestLoad_ConfigFile(t *testing.T) {
	chdirTemp(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 7000
engine:
  default_k: 5
predictor:
  enabled: true
  url: http://localhost:5000
`), 0o600))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Engine.DefaultK)
	assert.True(t, cfg.Predictor.Enabled)
	// Untouched sections keep their defaults.
	assert.Equal(t, 0.25, cfg.Engine.Weights.Profit)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	chdirTemp(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o600))
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	chdirTemp(t)

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}},
		{"weights do not sum to one", map[string]string{"ENGINE_WEIGHT_PROFIT": "0.9"}},
		{"predictor enabled without url", map[string]string{"PREDICTOR_ENABLED": "true"}},
		{"max_k below default_k", map[string]string{"ENGINE_MAX_K": "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	assert.Equal(t, "server.port", envTransformFunc("HTTP_PORT"))
	assert.Equal(t, "engine.weights.profit", envTransformFunc("ENGINE_WEIGHT_PROFIT"))
	assert.Equal(t, "logging.level", envTransformFunc("LOG_LEVEL"))

	// Unknown variables are dropped, not passed through.
	assert.Equal(t, "", envTransformFunc("PATH"))
	assert.Equal(t, "", envTransformFunc("HOME"))
}

func TestConfigValidate_Direct(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.API.RateLimitRequests = 10
	cfg.API.RateLimitWindow = 0
	assert.Error(t, cfg.Validate())
}

func TestEngineConfigConversion(t *testing.T) {
	cfg := defaultConfig()
	ec := cfg.EngineConfig()

	assert.Equal(t, 0.35, ec.Weights.Compatibility)
	assert.Equal(t, 10, ec.DefaultK)
	require.NoError(t, ec.Validate())
}

// chdirTemp moves the test into an empty directory so default config paths
// resolve nothing.
func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

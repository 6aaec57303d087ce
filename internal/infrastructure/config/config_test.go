package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"COREFLOW_APP_NAME":                 os.Getenv("COREFLOW_APP_NAME"),
		"COREFLOW_APP_ENV":                  os.Getenv("COREFLOW_APP_ENV"),
		"COREFLOW_APP_PORT":                 os.Getenv("COREFLOW_APP_PORT"),
		"COREFLOW_LOG_LEVEL":                os.Getenv("COREFLOW_LOG_LEVEL"),
		"COREFLOW_PRICING_QUOTE_VALIDITY":   os.Getenv("COREFLOW_PRICING_QUOTE_VALIDITY"),
		"COREFLOW_PRICING_DEFAULT_REGION":   os.Getenv("COREFLOW_PRICING_DEFAULT_REGION"),
		"COREFLOW_HTTP_CORS_ALLOW_ORIGINS":  os.Getenv("COREFLOW_HTTP_CORS_ALLOW_ORIGINS"),
		"COREFLOW_TELEMETRY_SAMPLING_RATIO": os.Getenv("COREFLOW_TELEMETRY_SAMPLING_RATIO"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "coreflow-pricing", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 24*time.Hour, cfg.Pricing.QuoteValidity)
		assert.Equal(t, "US", cfg.Pricing.DefaultRegion)
		assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	})

	t.Run("loads values from environment variables with COREFLOW prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("COREFLOW_APP_NAME", "test-app")
		os.Setenv("COREFLOW_APP_ENV", "testing")
		os.Setenv("COREFLOW_APP_PORT", "9000")
		os.Setenv("COREFLOW_LOG_LEVEL", "debug")
		os.Setenv("COREFLOW_PRICING_QUOTE_VALIDITY", "48h")
		os.Setenv("COREFLOW_PRICING_DEFAULT_REGION", "EU")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 48*time.Hour, cfg.Pricing.QuoteValidity)
		assert.Equal(t, "EU", cfg.Pricing.DefaultRegion)
	})

	t.Run("rejects sampling ratio above one", func(t *testing.T) {
		clearEnv()
		os.Setenv("COREFLOW_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})

	t.Run("rejects wildcard CORS origin in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("COREFLOW_APP_ENV", "production")
		os.Setenv("COREFLOW_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})
}

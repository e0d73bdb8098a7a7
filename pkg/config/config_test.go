package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, 10*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, 500*time.Millisecond, c.Server.SlowThreshold)
	assert.Equal(t, "/metrics", c.Metrics.Path)
	assert.Equal(t, 20, c.Analysis.MinPoints)
	assert.Equal(t, 3, c.Client.Attempts)
	assert.Equal(t, "memory", c.Cache.Backend)
	assert.Equal(t, 5*time.Minute, c.Cache.TTL)
	assert.Equal(t, "pairscope:", c.Cache.Redis.Prefix)
	assert.NoError(t, c.Validate())
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
environment: production
server:
  port: 9090
  slow_threshold: 2s
logger:
  level: warn
analysis:
  min_points: 30
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", c.Environment)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, 2*time.Second, c.Server.SlowThreshold)
	assert.Equal(t, 10*time.Second, c.Server.WriteTimeout)
	assert.Equal(t, "warn", c.Logger.Level)
	assert.Equal(t, "json", c.Logger.Format)
	assert.Equal(t, 30, c.Analysis.MinPoints)
	assert.True(t, c.RateLimit.Enabled)
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "analysis:\n  min_points: 50\n  max_points: 10\n"))
	assert.ErrorContains(t, err, "max_points")

	_, err = Load(writeConfig(t, "logger:\n  format: xml\n"))
	assert.ErrorContains(t, err, "logger.format")

	_, err = Load(writeConfig(t, "cache:\n  backend: memcached\n"))
	assert.ErrorContains(t, err, "cache.backend")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PAIRSCOPE_ENV", "staging")
	t.Setenv("PAIRSCOPE_PORT", "7000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	c, err := LoadWithEnv("")
	require.NoError(t, err)
	assert.Equal(t, "staging", c.Environment)
	assert.Equal(t, 7000, c.Server.Port)
	assert.Equal(t, "debug", c.Logger.Level)
	assert.Equal(t, "console", c.Logger.Format)

	t.Setenv("PAIRSCOPE_PORT", "eighty")
	_, err = LoadWithEnv("")
	assert.Error(t, err)
}

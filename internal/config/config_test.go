package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `server:
  address: ":9000"
  env: production
  cors_origins: ["https://grid.example"]
  shutdown_timeout_seconds: 3
logging:
  level: debug
metrics:
  enabled: false
  path: /internal/metrics
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"address", cfg.Server.Address, ":9000"},
		{"production", cfg.Server.Production(), true},
		{"cors", cfg.Server.CORSOrigins, []string{"https://grid.example"}},
		{"shutdown", cfg.Server.ShutdownTimeout(), 3 * time.Second},
		{"level", cfg.Logging.Level, "debug"},
		{"metrics.enabled", cfg.Metrics.Enabled, false},
		{"metrics.path", cfg.Metrics.Path, "/internal/metrics"},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoad_JSONWithDefaults(t *testing.T) {
	path := writeFile(t, "config.json", `{"logging": {"level": "warn"}}`)
	t.Setenv("API_PORT", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8888", cfg.Server.Address)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "config.yaml", "server:\n  address: \":9000\"\n")
	t.Setenv("PP_SERVER__ADDRESS", ":7000")
	t.Setenv("PP_LOGGING__LEVEL", "error")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Address)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_NoFileUsesAPIPort(t *testing.T) {
	t.Setenv("API_PORT", "8123")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8123", cfg.Server.Address)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "config.toml", "x = 1"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "config.yaml", "logging:\n  level: loud\n"))
	assert.ErrorContains(t, err, "logging.level")

	_, err = Load(writeFile(t, "config.yaml", "metrics:\n  path: metrics\n"))
	assert.ErrorContains(t, err, "metrics.path")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.Metrics.Enabled)
}

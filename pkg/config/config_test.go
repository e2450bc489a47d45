package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobboard/jobfilter/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
		"Address": ":9090",
		"StoreURL": "postgres://jobs@localhost/jobs",
		"ShutdownTimeout": "30s",
		"UnknownAttributes": "reject",
		"MigrateSchema": true
	}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "postgres://jobs@localhost/jobs", cfg.StoreURL)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout.Duration)
	assert.Equal(t, "reject", cfg.UnknownAttributes)
	assert.True(t, cfg.MigrateSchema)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadNumericDuration(t *testing.T) {
	path := writeConfig(t, `{"ShutdownTimeout": 1000000000}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.ShutdownTimeout.Duration)
}

func TestLoadInvalidDuration(t *testing.T) {
	path := writeConfig(t, `{"ShutdownTimeout": true}`)

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("JOBFILTER_STORE_URL", "sqlite:///tmp/jobs.db")
	t.Setenv("JOBFILTER_LOG_LEVEL", "debug")
	t.Setenv("JOBFILTER_SHUTDOWN_TIMEOUT", "2s")

	cfg, err := config.Load(writeConfig(t, `{"StoreURL": "mysql://file"}`))
	require.NoError(t, err)
	assert.Equal(t, "sqlite:///tmp/jobs.db", cfg.StoreURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout.Duration)

	t.Setenv("JOBFILTER_SHUTDOWN_TIMEOUT", "soon")

	_, err = config.Load("")
	require.Error(t, err)
}

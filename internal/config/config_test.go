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
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.UsesPostgres())
	assert.Equal(t, 2*time.Second, cfg.VisitsTimeout)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "petclinic", cfg.MetricsNamespace)
	assert.Equal(t, "customers-service", cfg.AppName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("DB_DSN", "postgres://u:p@localhost:5432/petclinic")
	t.Setenv("VISITS_TIMEOUT", "750ms")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, 750*time.Millisecond, cfg.VisitsTimeout)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("VISITS_SERVICE_URL=http://visits:8082\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("VISITS_SERVICE_URL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://visits:8082", cfg.VisitsServiceURL)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("VISITS_TIMEOUT", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inDir runs the test from dir so Load picks up dir/configs/config.yaml.
func inDir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	inDir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "generated", cfg.Data.Source)
	assert.Equal(t, int64(20240601), cfg.Data.Seed)
	assert.Equal(t, 250, cfg.Data.Orders)
	assert.Equal(t, int64(42), cfg.Analytics.PaymentSeed)
	assert.Equal(t, 10*time.Minute, cfg.Analytics.CacheTTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.MinIO.Enabled())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	yaml := `
server:
  port: 9090
data:
  source: file
  file_path: /srv/crm/data
analytics:
  cache_ttl: 30s
redis:
  host: cache.internal
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(yaml), 0o644))
	inDir(t, dir)
	t.Setenv("CRM_PAYMENT_SEED", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "file", cfg.Data.Source)
	assert.Equal(t, "/srv/crm/data", cfg.Data.FilePath)
	assert.Equal(t, 30*time.Second, cfg.Analytics.CacheTTL)
	assert.Equal(t, int64(7), cfg.Analytics.PaymentSeed)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr())
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "generated", cfg.Data.Source)
	assert.Equal(t, "crm-exports", cfg.MinIO.Bucket)

	cfg = &Config{Data: DataConfig{Source: "postgres"}}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Data: DataConfig{Source: "postgres"}, Database: DatabaseConfig{Host: "db"}}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{Data: DataConfig{Source: "kafka"}}
	assert.Error(t, cfg.Validate())
}

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEDGER_DATA_DIR", dir)
	t.Setenv("LEDGER_DB_PATH", "")
	t.Setenv("LEDGER_BUCKET_MAPPING", "")
	t.Setenv("DEBUG", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "ledger.db"), cfg.DBPath)
	assert.False(t, cfg.Debug)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "custom.db")
	t.Setenv("LEDGER_DATA_DIR", dir)
	t.Setenv("LEDGER_DB_PATH", dbPath)
	t.Setenv("DEBUG", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, dbPath, cfg.DBPath)
	assert.True(t, cfg.Debug)
}

func TestValidateMissingBucketMapping(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEDGER_DATA_DIR", dir)
	t.Setenv("LEDGER_BUCKET_MAPPING", filepath.Join(dir, "nope.yaml"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}

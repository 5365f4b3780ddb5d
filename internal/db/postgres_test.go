package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unibrowser/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	return cfg
}

func TestPoolConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Host = "db.internal"
	cfg.Database.DBName = "unibrowser"
	cfg.Database.MaxOpenConns = 8
	cfg.Database.MaxIdleConns = 2
	cfg.Database.ConnMaxLifetime = "30m"

	poolConfig, err := PoolConfig(cfg)
	require.NoError(t, err)

	assert.EqualValues(t, 8, poolConfig.MaxConns)
	assert.EqualValues(t, 2, poolConfig.MinConns)
	assert.Equal(t, 30*time.Minute, poolConfig.MaxConnLifetime)
	assert.Equal(t, "db.internal", poolConfig.ConnConfig.Host)
	assert.Equal(t, "unibrowser", poolConfig.ConnConfig.Database)
	assert.NotNil(t, poolConfig.BeforeAcquire)
}

func TestPoolConfig_BadLifetime(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.ConnMaxLifetime = "soon"

	_, err := PoolConfig(cfg)
	assert.ErrorContains(t, err, "max lifetime")
}

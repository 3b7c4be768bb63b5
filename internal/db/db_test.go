package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := PoolConfig(Options{DSN: "postgres://shareit@localhost:5432/shareit"})
		require.NoError(t, err)
		assert.Equal(t, defaultIdleTime, cfg.MaxConnIdleTime)
		assert.Equal(t, "shareit", cfg.ConnConfig.Database)
	})

	t.Run("MaxConns override", func(t *testing.T) {
		cfg, err := PoolConfig(Options{DSN: "postgres://localhost/shareit?pool_max_conns=4", MaxConns: 12})
		require.NoError(t, err)
		assert.Equal(t, int32(12), cfg.MaxConns)
	})

	t.Run("DSN pool settings are kept", func(t *testing.T) {
		cfg, err := PoolConfig(Options{DSN: "postgres://localhost/shareit?pool_max_conns=4&pool_max_conn_idle_time=30s"})
		require.NoError(t, err)
		assert.Equal(t, int32(4), cfg.MaxConns)
		assert.Equal(t, 30*time.Second, cfg.MaxConnIdleTime)
	})

	t.Run("Invalid DSN", func(t *testing.T) {
		_, err := PoolConfig(Options{DSN: "postgres://localhost:notaport/shareit"})
		assert.ErrorContains(t, err, "failed to parse database config")
	})
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaultsWithMemoryStorage(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("DB_DSN", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int32(0), cfg.DBMaxConns)
	assert.Equal(t, float64(0), cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, RateLimitMemory, cfg.RateLimitBackend)
}

func TestFromEnvPostgresRequiresDSN(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "DB_DSN")

	t.Setenv("DB_DSN", "postgres://localhost/shareit")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/shareit", cfg.DBDSN)
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"STORAGE_DRIVER":     "mongo",
		"DB_AUTO_MIGRATE":    "maybe",
		"DB_MAX_CONNS":       "-3",
		"RATE_LIMIT_RPS":     "-1",
		"RATE_LIMIT_BURST":   "lots",
		"RATE_LIMIT_BACKEND": "etcd",
		"REDIS_DB":           "x",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("STORAGE_DRIVER", "memory")
			t.Setenv(key, value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFromEnvProduction(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

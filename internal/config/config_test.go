package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HTTP_ADDR", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "servicehub.db", cfg.DatabaseURL)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, time.Hour, cfg.CORSMaxAge)
	assert.Equal(t, 20, cfg.AuthRateBurst)
	assert.False(t, cfg.IsProd())
}

func TestFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("CORS_MAX_AGE", "forever")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS_MAX_AGE")
}

func TestFromEnvRejectsBadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "<root>=LOUD")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestFromEnvProdRequiresPostgres(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "servicehub.db")

	_, err := FromEnv()
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://svc:secret@db:5432/servicehub")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "/tools", cfg.Tools.PathPrefix)
	assert.Equal(t, 8090, cfg.Tools.StandalonePort)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Contains(t, cfg.Database.DSN, "mcp_store")
	// Reader falls back to the primary DSN when unset.
	assert.Equal(t, cfg.Database.DSN, cfg.Database.ReaderDSN)
	assert.Equal(t, "storefront", cfg.Observability.ServiceName)
	// Cache and messaging default off, which forces the noop drivers.
	assert.Equal(t, "noop", cfg.Cache.Driver)
	assert.Equal(t, "noop", cfg.Messaging.Driver)
}

func TestNewEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:app@db:5432/app?sslmode=disable")
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("TOOLS_PATH_PREFIX", "agent-tools/")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_DEFAULT_TTL", "30s")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:app@db:5432/app?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 9999, cfg.HTTP.Port)
	assert.Equal(t, "/agent-tools", cfg.Tools.PathPrefix)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, 30*time.Second, cfg.Cache.DefaultTTL)
}

func TestNewRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "-1")

	_, err := New()
	assert.Error(t, err)
}

func TestNewRejectsUnknownCacheDriver(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_DRIVER", "memcache")

	_, err := New()
	assert.Error(t, err)
}

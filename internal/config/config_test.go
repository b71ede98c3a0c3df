package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microshop/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load(":9999")

	assert.Equal(t, ":9999", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "host=localhost user=shop dbname=shop")

	cfg := config.Load(":9999")

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=localhost user=shop dbname=shop", cfg.DBDSN)
}

func TestLoadGatewayRoutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	routes := `routes:
  - prefix: /api/v1/users
    upstream: http://localhost:8081
  - prefix: /api/v1/products
    upstream: http://localhost:8082
    cache: true
    cache_ttl: 45s
`
	require.NoError(t, os.WriteFile(path, []byte(routes), 0o600))
	t.Setenv("GATEWAY_ROUTES", path)

	cfg, err := config.LoadGateway()
	require.NoError(t, err)

	require.Len(t, cfg.Routes, 2)
	assert.Equal(t, "/api/v1/users", cfg.Routes[0].Prefix)
	assert.False(t, cfg.Routes[0].Cache)
	assert.Equal(t, "http://localhost:8082", cfg.Routes[1].Upstream)
	assert.True(t, cfg.Routes[1].Cache)
	assert.Equal(t, 45*time.Second, cfg.Routes[1].CacheTTL)
}

func TestLoadGatewayMissingRoutesFile(t *testing.T) {
	t.Setenv("GATEWAY_ROUTES", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := config.LoadGateway()

	assert.Error(t, err)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("API_HOST", "127.0.0.1")
	t.Setenv("API_PORT", "9090")
	t.Setenv("ROUTING_PROVIDER", " Mapbox ")
	t.Setenv("ROUTING_TIMEOUT_MS", "2500")
	t.Setenv("MAPBOX_ACCESS_TOKEN", "pk.test")
	t.Setenv("MAPBOX_MAX_MATRIX_POINTS", "10")
	t.Setenv("ROUTE_CACHE_TTL", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
	assert.Equal(t, ProviderMapbox, cfg.Routing.Provider)
	assert.Equal(t, 2500*time.Millisecond, cfg.Routing.Timeout)
	assert.Equal(t, "pk.test", cfg.Mapbox.AccessToken)
	assert.Equal(t, 10, cfg.Mapbox.MaxMatrixPoints)
	assert.Equal(t, time.Minute, cfg.Cache.RouteCacheTTL)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ROUTING_PROVIDER", "")
	t.Setenv("ROUTING_TIMEOUT_MS", "")
	t.Setenv("MAPBOX_MAX_MATRIX_POINTS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderNone, cfg.Routing.Provider)
	assert.Equal(t, 8*time.Second, cfg.Routing.Timeout)
	assert.Equal(t, 25, cfg.Mapbox.MaxMatrixPoints)
	assert.Equal(t, "mapbox/walking", cfg.Mapbox.Profile)
	assert.Equal(t, 1.39, cfg.Routing.EstimateSpeedMps)
	assert.Equal(t, "sub", cfg.Auth.UserClaim)
	assert.Equal(t, 1, cfg.Routing.RetryAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.Routing.RetryBackoff)
}

func TestLoad_UnknownProvider(t *testing.T) {
	t.Setenv("ROUTING_PROVIDER", "osrm")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unknown ROUTING_PROVIDER")
}

func TestConfig_GetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "secret", DBName: "itinerary", SSLMode: "disable",
	}}

	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=itinerary sslmode=disable",
		cfg.GetDatabaseDSN(),
	)
}

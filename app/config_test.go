package app

import (
	"testing"
	"time"

	"backoffice-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDRESS", "SEED_FILE", "CLIENT_DELETE_POLICY", "CORS_ALLOW_ORIGINS", "CONTRACT_EXPIRY_SCHEDULE", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := configFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Empty(t, cfg.SeedFile)
	assert.Equal(t, service.DeleteReject, cfg.ClientDeletePolicy)
	assert.Equal(t, []string{"*"}, cfg.CorsAllowOrigins)
	assert.Empty(t, cfg.ContractExpirySchedule)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("CLIENT_DELETE_POLICY", "orphan")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := configFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, service.DeleteOrphan, cfg.ClientDeletePolicy)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsAllowOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestConfigRejectsBadValues(t *testing.T) {
	t.Setenv("CLIENT_DELETE_POLICY", "purge")
	_, err := configFromEnv()
	assert.Error(t, err)

	t.Setenv("CLIENT_DELETE_POLICY", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	_, err = configFromEnv()
	assert.Error(t, err)
}

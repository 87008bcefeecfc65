package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("API_KEYS", " key-1 , key-2")
	t.Setenv("SIMULATED_LATENCY", "250ms")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("WEBHOOK_MAX_RETRIES", "0")
	t.Setenv("SNAPSHOT_INTERVAL", "1m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://portal.example.org,, ")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"key-1", "key-2"}, cfg.APIKeys)
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatedLatency)
	assert.Equal(t, 1, cfg.WebhookMaxRetries)
	assert.Equal(t, time.Minute, cfg.SnapshotInterval)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, []string{"https://portal.example.org"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidErrorRate(t *testing.T) {
	t.Setenv("SIMULATED_ERROR_RATE", "1.5")

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestLoadConfig_NonPositiveSnapshotInterval(t *testing.T) {
	for _, value := range []string{"0s", "-5s"} {
		t.Setenv("SNAPSHOT_INTERVAL", value)

		_, err := LoadConfig()

		assert.Error(t, err, value)
	}
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_DUR", "soon")
	t.Setenv("X_FLOAT", "0.25")

	assert.Equal(t, 7, getEnvAsInt("X_INT", 7))
	assert.Equal(t, time.Second, getEnvAsDuration("X_DUR", time.Second))
	assert.Equal(t, 0.25, getEnvAsFloat("X_FLOAT", 0))
}

func TestSplitAndTrim_Empty(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Nil(t, splitAndTrim(" , "))
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvWithDefaults(t *testing.T) {
	t.Run("unset keys fall back", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("PATHFINDER_TEST_UNSET", "fallback"))
		assert.Equal(t, 25, getEnvAsIntWithDefault("PATHFINDER_TEST_UNSET", 25))
		assert.True(t, getEnvAsBoolWithDefault("PATHFINDER_TEST_UNSET", true))
	})

	t.Run("set keys are parsed", func(t *testing.T) {
		t.Setenv("PATHFINDER_TEST_INT", "40")
		t.Setenv("PATHFINDER_TEST_BOOL", "false")
		assert.Equal(t, 40, getEnvAsIntWithDefault("PATHFINDER_TEST_INT", 25))
		assert.False(t, getEnvAsBoolWithDefault("PATHFINDER_TEST_BOOL", true))
	})
}

func TestLoad(t *testing.T) {
	required := map[string]string{
		"DB_HOST": "localhost", "DB_PORT": "27017", "DB_USER": "u", "DB_PASS": "p",
		"DB_NAME": "pathfinder", "REDIS_ADDR": "localhost:6379", "JWT_SECRET": "s",
		"JWT_ISSUER": "pathfinder", "HOST_IP": "0.0.0.0", "REST_PORT": "8080",
	}
	for k, v := range required {
		t.Setenv(k, v)
	}
	t.Setenv("PLAYBACK_TICK_MS", "50")
	t.Setenv("STRICT_ENDPOINTS", "false")

	cfg := Load()
	assert.Equal(t, 8080, cfg.RESTPort)
	assert.Equal(t, 25, cfg.PlaybackBatch)
	assert.Equal(t, 50*time.Millisecond, cfg.PlaybackTick)
	assert.Equal(t, 600*time.Second, cfg.PlaybackTTL)
	assert.False(t, cfg.StrictEndpoints)
	assert.Equal(t, 200, cfg.MaxGridDimension)
	assert.Equal(t, cfg, Envs)
}

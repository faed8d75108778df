package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"STORE_DRIVER", "REDIS_URL", "ANALYSIS_TIMEOUT", "SEED_DEMO_DATA", "ALLOWED_ORIGINS", "GEMINI_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, 20*time.Second, cfg.AnalysisTimeout)
	assert.True(t, cfg.SeedDemoData)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("MAX_DB_CONNS", "4")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("ANALYSIS_TIMEOUT", "5s")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg := Load()
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, int32(4), cfg.MaxDBConns)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.AnalysisTimeout)
	assert.False(t, cfg.SeedDemoData)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MAX_DB_CONNS", "many")
	t.Setenv("ANALYSIS_TIMEOUT", "-3s")
	t.Setenv("SEED_DEMO_DATA", "maybe")

	cfg := Load()
	assert.Equal(t, int32(16), cfg.MaxDBConns)
	assert.Equal(t, 20*time.Second, cfg.AnalysisTimeout)
	assert.True(t, cfg.SeedDemoData)
}

func TestUserSessionKey(t *testing.T) {
	assert.Equal(t, "session:u4", CacheKey.UserSessionKey("u4"))
}

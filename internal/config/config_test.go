package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// When: no variables are set
	conf, err := Load()

	// Then: defaults apply
	require.NoError(t, err)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, "json", conf.LogFormat)
	assert.Equal(t, UIConsole, conf.UI)
	assert.Equal(t, "127.0.0.1:5175", conf.HTTP.Addr())
	assert.Equal(t, BackendSQLite, conf.Scores.Backend)
	assert.Equal(t, "./data/guess.db", conf.Scores.SQLitePath)
	assert.Equal(t, "guessnumber:best-score", conf.Scores.RedisKey)
	assert.Equal(t, 24*time.Hour, conf.Session.TTL)
}

func TestLoad_FromEnv(t *testing.T) {
	// Given: overrides in the environment
	t.Setenv("UI", "web")
	t.Setenv("PORT", "8080")
	t.Setenv("HTTP_HOST", "0.0.0.0")
	t.Setenv("SCORE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SESSION_TTL", "90m")

	// When: loading
	conf, err := Load()

	// Then: the overrides are used
	require.NoError(t, err)
	assert.Equal(t, UIWeb, conf.UI)
	assert.Equal(t, "0.0.0.0:8080", conf.HTTP.Addr())
	assert.Equal(t, BackendRedis, conf.Scores.Backend)
	assert.Equal(t, "redis:6379", conf.Scores.RedisAddr)
	assert.Equal(t, 90*time.Minute, conf.Session.TTL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("UI", func(t *testing.T) {
		t.Setenv("UI", "gui")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("Backend", func(t *testing.T) {
		t.Setenv("SCORE_BACKEND", "localStorage")

		_, err := Load()

		assert.Error(t, err)
	})
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "todos.db", cfg.DBDSN)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	t.Setenv("SOME_BAD_INT", "forty-two")

	assert.Equal(t, 42, GetEnvAsInt("SOME_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("SOME_BAD_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("SOME_UNSET_INT", 7))

	assert.Equal(t, "fallback", GetEnvAsString("SOME_UNSET_STR", "fallback"))

	t.Setenv("SOME_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetEnvAsDuration("SOME_DUR", time.Minute))
	assert.Equal(t, time.Minute, GetEnvAsDuration("SOME_UNSET_DUR", time.Minute))
}

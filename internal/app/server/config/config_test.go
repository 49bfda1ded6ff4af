package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URI", "postgres://localhost/dropops")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, ":8080", cfg.Server.RunAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 168*time.Hour, cfg.Auth.SessionTTL)
	assert.False(t, cfg.Auth.VerifySignature)
	assert.True(t, cfg.DB.Migrations)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URI", "postgres://db/dropops")
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("AUTH_VERIFY_SIGNATURE", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.True(t, cfg.Auth.VerifySignature)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("DATABASE_URI", "")
	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URI")

	t.Setenv("DATABASE_URI", "postgres://db/dropops")
	t.Setenv("APP_ENV", "staging")
	_, err = Load()
	assert.ErrorContains(t, err, "staging")
}

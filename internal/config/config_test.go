package config_test

import (
	"testing"

	"sharexconnect/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvConfig_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("APP_CORS_ORIGINS", "")
	t.Setenv("JWT_TTL_HOURS", "")

	cfg := config.NewEnvConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 168, cfg.JWT.TTLHours)
	assert.Equal(t, int64(25), cfg.MaxUploadMB)
}

func TestNewEnvConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("JWT_TTL_HOURS", "not-a-number")
	t.Setenv("APP_MAX_UPLOAD_MB", "5")

	cfg := config.NewEnvConfig()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 168, cfg.JWT.TTLHours)
	assert.Equal(t, int64(5), cfg.MaxUploadMB)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{Database: config.Database{Driver: "sqlite"}}
	require.Error(t, cfg.Validate())

	cfg.JWT.Secret = "secret"
	require.NoError(t, cfg.Validate())

	cfg.Database.Driver = "postgres"
	require.Error(t, cfg.Validate())

	cfg.Database.Host = "localhost"
	cfg.Database.Name = "sharex"
	require.NoError(t, cfg.Validate())

	cfg.Database.Driver = "mysql"
	require.Error(t, cfg.Validate())
}

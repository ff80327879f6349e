package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pet-adoption/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "APP_NAME", "LOG_LEVEL", "LOG_FORMAT", "DB_DSN", "REDIS_URL",
	"AUTH_URL", "AUTH_API_KEY",
	"SEED_ON_START", "BACKFILL_SCHEDULE", "PREFERENCE_TTL", "UPLOADS_BASE_URL",
}

// clearEnv deja el entorno limpio y lo restaura al terminar el test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DB_DSN", "postgres://u:p@localhost:5432/pets?sslmode=disable")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("AUTH_URL", "https://id.example.com")
	t.Setenv("AUTH_API_KEY", " k1 ")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("BACKFILL_SCHEDULE", "")
	t.Setenv("PREFERENCE_TTL", "2h")
	t.Setenv("UPLOADS_BASE_URL", "https://cdn.example.com/uploads")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, logger.Debug, cfg.LogLevel)
	assert.Equal(t, logger.FormatJSON, cfg.LogFormat)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.RedisURL)
	assert.Equal(t, "https://id.example.com", cfg.AuthURL)
	assert.Equal(t, "k1", cfg.AuthAPIKey)
	assert.False(t, cfg.SeedOnStart)
	assert.Empty(t, cfg.BackfillSchedule)
	assert.Equal(t, 2*time.Hour, cfg.PreferenceTTL)
	assert.Equal(t, "https://cdn.example.com/uploads", cfg.UploadsBaseURL)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", "http"},
		{"PORT", "70000"},
		{"LOG_LEVEL", "loud"},
		{"LOG_FORMAT", "xml"},
		{"SEED_ON_START", "maybe"},
		{"PREFERENCE_TTL", "soon"},
		{"PREFERENCE_TTL", "-5m"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=petmatch-test\nPREFERENCE_TTL=45m\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("APP_NAME")
		_ = os.Unsetenv("PREFERENCE_TTL")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "petmatch-test", cfg.AppName)
	assert.Equal(t, 45*time.Minute, cfg.PreferenceTTL)
}

func TestLoad_WithoutDotEnvIsFine(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

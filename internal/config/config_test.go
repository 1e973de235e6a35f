package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "poultry-farm", cfg.MongoDB.DBName)
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
	assert.NotEmpty(t, cfg.Scheduler.CronSchedule)
	assert.False(t, cfg.SheetsEnabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("MONGODB_DB_NAME", "farm-test")
	t.Setenv("JWT_SECRET", "supersecret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "farm-test", cfg.MongoDB.DBName)
	assert.Equal(t, "supersecret", cfg.Auth.JWTSecret)
}

func TestValidateRejectsPartialSheetsConfig(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/tmp/creds.json")

	_, err := Load("")
	require.Error(t, err)
}

func TestSheetsEnabled(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("GOOGLE_SHEET_EXPORT_ID", "sheet-id")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.SheetsEnabled())
}

func TestValidateMissingRequired(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())
}

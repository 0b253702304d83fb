package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME",
	"JWT_SECRET", "JWT_ISSUER", "JWT_TTL", "LOG_LEVEL", "LOG_FORMAT",
	"REMINDER_SCHEDULE", "REMINDER_WINDOW", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "* * * * *", cfg.ReminderSchedule)
	assert.Equal(t, time.Hour, cfg.ReminderWindow)
	assert.Equal(t, 25, cfg.Database().MaxOpenConns)
	assert.Equal(t, "clinic-api", cfg.Token().Issuer)
}

func TestLoadConfig_FromEnvironmentAndFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"JWT_SECRET=from-file\nDB_NAME=clinic_file\nREMINDER_WINDOW=30m\nHTTP_PORT=9000\n",
	), 0o600))
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_MAX_IDLE_CONNS", "3")
	t.Setenv("JWT_TTL", "2h")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort, "environment wins over the file")
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "clinic_file", cfg.Database().Name)
	assert.Equal(t, 3, cfg.Database().MaxIdleConns)
	assert.Equal(t, 2*time.Hour, cfg.Token().TTL)
	assert.Equal(t, 30*time.Minute, cfg.Reminder().Window)
}

func TestLoadConfig_MissingFileIsSkipped(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "http")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "xml")
	t.Setenv("REMINDER_WINDOW", "0s")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT must be a port number")
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "LOG_FORMAT must be json or console")
	assert.Contains(t, err.Error(), "REMINDER_WINDOW must be positive")
}

package config_test

import (
	"testing"
	"time"

	"homework_status_bot/internal/infra/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv gives every variable a known value so leftovers from the
// host environment cannot leak into a test.
func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("PRACTICUM_TOKEN", "practicum-token")
	t.Setenv("TELEGRAM_TOKEN", "telegram-token")
	t.Setenv("TELEGRAM_CHAT_ID", "123456")
	t.Setenv("PRACTICUM_ENDPOINT", "")
	t.Setenv("POLL_INTERVAL", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_FILE", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "practicum-token", cfg.PracticumToken)
	assert.Equal(t, "telegram-token", cfg.TelegramToken)
	assert.Equal(t, int64(123456), cfg.TelegramChatID)
	assert.Equal(t, config.DefaultEndpoint, cfg.PracticumEndpoint)
	assert.Equal(t, 10*time.Minute, cfg.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "bot.log", cfg.LogFile)
}

func TestLoad_MissingCredentialIsFatal(t *testing.T) {
	for _, name := range []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Run(name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(name, "")

			cfg, err := config.Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLoad_InvalidChatID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID")
}

func TestLoad_InvalidPollInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLL_INTERVAL", "every now and then")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLL_INTERVAL")
}

func TestLoad_NegativePollInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLL_INTERVAL", "-10m")

	_, err := config.Load()

	require.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PRACTICUM_ENDPOINT", "http://localhost:8080/statuses/")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("LOG_FILE", "/tmp/hw.log")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/statuses/", cfg.PracticumEndpoint)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "/tmp/hw.log", cfg.LogFile)
}

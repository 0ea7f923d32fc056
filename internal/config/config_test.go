package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
}

func TestLoadSecretKeyFromEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("AL_SECRET_KEY", "env-secret-key")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "env-secret-key", cfg.SecretKey)
}

func TestLoadEphemeralSecretKeyWhenUnset(t *testing.T) {
	resetViper(t)
	t.Setenv("AL_SECRET_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.SecretKey, "an absent SECRET_KEY still yields a usable key")
}

func TestLoadMailgunFromEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("AL_MAILGUN_API_KEY", "key-123")
	t.Setenv("AL_MAILGUN_DOMAIN", "mg.example.com")
	t.Setenv("AL_MAILGUN_API_BASE", "https://api.eu.mailgun.net/v3")
	t.Setenv("AL_NOTIFICATION_FROM", "noreply@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "key-123", cfg.MailgunAPIKey)
	require.Equal(t, "mg.example.com", cfg.MailgunDomain)
	require.Equal(t, "https://api.eu.mailgun.net/v3", cfg.MailgunAPIBase)
	require.Equal(t, "noreply@example.com", cfg.NotificationFrom)
	require.True(t, cfg.MailEnabled())
}

func TestMailDisabledWithoutConfiguration(t *testing.T) {
	resetViper(t)
	t.Setenv("AL_MAILGUN_API_KEY", "")
	t.Setenv("AL_MAILGUN_DOMAIN", "")
	t.Setenv("AL_NOTIFICATION_FROM", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.MailEnabled())
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.ServerPort)
	require.Equal(t, "activitylog.db", cfg.DatabasePath)
	require.False(t, cfg.DebugEndpoint)
	require.Len(t, cfg.AllowedUsers, 3)
}

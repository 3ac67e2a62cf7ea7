package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SMTP_USERNAME", "owner@gmail.com")
	t.Setenv("SMTP_PASSWORD", "app-password")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "owner@gmail.com", cfg.SMTPFromEmail, "from defaults to the login account")
	assert.Equal(t, 10, cfg.ContactMinMessageLength)
	assert.Equal(t, "classic", cfg.EmailTemplate)
	assert.Equal(t, 30, cfg.SMTPTimeoutSeconds)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_FROM_EMAIL", "noreply@example.com")
	t.Setenv("CONTACT_MIN_MESSAGE_LENGTH", "-3")
	t.Setenv("EMAIL_TEMPLATE", "CARD")
	t.Setenv("FRONTEND_URL", "https://alvaro.dev/")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.dev/ ,, https://b.dev")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, "noreply@example.com", cfg.SMTPFromEmail)
	assert.Equal(t, 0, cfg.ContactMinMessageLength, "negative lengths clamp to disabled")
	assert.Equal(t, "card", cfg.EmailTemplate)
	assert.Equal(t, "https://alvaro.dev", cfg.FrontendURL)
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, cfg.CORSAllowedOrigins)
}

func TestGetEnvIntInvalidFallsBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	assert.Equal(t, 587, getEnvInt("SMTP_PORT", 587))
}

func TestLoadConfigSMTPTimeoutClamp(t *testing.T) {
	for _, raw := range []string{"0", "-5"} {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("SMTP_TIMEOUT_SECONDS", raw)

			cfg, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, DefaultSMTPTimeoutSeconds, cfg.SMTPTimeoutSeconds)
		})
	}

	t.Setenv("SMTP_TIMEOUT_SECONDS", "12")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.SMTPTimeoutSeconds)
}

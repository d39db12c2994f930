package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeff-nasseri/mailharvest/internal/enum"
)

func TestLoadCredentials_FromPrefixedEnv(t *testing.T) {
	// Arrange
	t.Setenv("GMAIL_USERNAME", "me@gmail.com")
	t.Setenv("GMAIL_APP_PASSWORD", "app-pass")

	// Act
	credentials, err := LoadCredentials(enum.EmailProviderGmail)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "me@gmail.com", credentials.Username)
	assert.Equal(t, "app-pass", credentials.Secret)
}

func TestLoadCredentials_MissingNamesBothVariables(t *testing.T) {
	// Arrange
	os.Unsetenv("ZOHO_USERNAME")
	os.Unsetenv("ZOHO_APP_PASSWORD")

	// Act
	_, err := LoadCredentials(enum.EmailProviderZoho)

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ZOHO_USERNAME")
	assert.Contains(t, err.Error(), "ZOHO_APP_PASSWORD")
}

func TestInitConfig_Defaults(t *testing.T) {
	// Arrange
	os.Unsetenv("MAILHARVEST_MAILBOX")

	// Act
	cfg, err := InitConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "INBOX", cfg.AppConfig.Mailbox)
	assert.Equal(t, "console", cfg.Logger.Encoder)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestInitConfig_MailboxOverride(t *testing.T) {
	// Arrange
	t.Setenv("MAILHARVEST_MAILBOX", "Archive")

	// Act
	cfg, err := InitConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Archive", cfg.AppConfig.Mailbox)
}

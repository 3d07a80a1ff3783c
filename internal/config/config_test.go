package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsAreKept(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9000

[database]
host = "db"
dbname = "surf"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 5, cfg.News.Limit)
	assert.Equal(t, 30, cfg.Watcher.AlertInterval)
	assert.Equal(t, "brl", cfg.Payments.Currency)
	assert.Equal(t, int64(10<<20), cfg.Uploads.MaxSizeBytes())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	assert.False(t, cfg.Payments.Enabled())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	path := writeConfig(t, `
[auth]
jwt_secret = "from-file"

[database]
password = "file-pass"
`)
	t.Setenv(EnvJWTSecret, "from-env")
	t.Setenv(EnvDBPassword, "env-pass")
	t.Setenv(EnvStripeAPIKey, "sk_test_123")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.True(t, cfg.Payments.Enabled())
	assert.Contains(t, cfg.Database.DSN(), "password=env-pass")
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 70000

[uploads]
max_size_mb = 0
`)

	_, err := Load(path)

	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "http_port")
	assert.Contains(t, err.Error(), "max_size_mb")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidateServe(t *testing.T) {
	cfg := Default()
	assert.ErrorIs(t, cfg.ValidateServe(), ErrInvalidConfig)

	cfg.Auth.JWTSecret = "secret"
	assert.NoError(t, cfg.ValidateServe())
}

func TestValidateServe_PaymentsNeedWebhookSecret(t *testing.T) {
	cfg := Default()
	cfg.Auth.JWTSecret = "secret"
	cfg.Payments.StripeAPIKey = "sk_test_123"

	err := cfg.ValidateServe()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "webhook_secret")

	cfg.Payments.WebhookSecret = "whsec_123"
	assert.NoError(t, cfg.ValidateServe())
}

func TestShopLocation_FallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, ShopConfig{Timezone: "Mars/Olympus"}.Location())
}

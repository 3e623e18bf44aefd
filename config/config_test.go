package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/health?sslmode=disable")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ACCESS_TOKEN_TTL", "2m")
	t.Setenv("JWT_REVOCATION_ENABLED", "true")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost/health?sslmode=disable", cfg.DatabaseConfig.DSN)
	assert.Equal(t, 2*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTokenTTL)
	assert.Equal(t, 15*time.Second, cfg.JWT.ClockSkew)
	assert.Equal(t, 4*time.Hour, cfg.JWT.MaxTokenAge)
	assert.True(t, cfg.JWT.RevocationEnabled)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.True(t, cfg.Server.TrustProxyHeaders)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
databaseConfig:
  dsn: "postgres://file"
jwt:
  secret_key: "from-file"
  issuer: "file-issuer"
  refresh_token_ttl: 48h
inference:
  url: "http://inference:8000/predict"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("JWT_ISSUER", "env-issuer")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file", cfg.DatabaseConfig.DSN)
	assert.Equal(t, "from-file", cfg.JWT.SecretKey)
	assert.Equal(t, "env-issuer", cfg.JWT.Issuer)
	assert.Equal(t, 48*time.Hour, cfg.JWT.RefreshTokenTTL)
	assert.Equal(t, "http://inference:8000/predict", cfg.Inference.URL)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.False(t, cfg.Server.TrustProxyHeaders)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_BcryptCostRange(t *testing.T) {
	cfg := Defaults()
	cfg.DatabaseConfig.DSN = "dsn"
	cfg.JWT.SecretKey = "secret"
	cfg.Security.BcryptCost = 64

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bcrypt_cost")
}

func TestLoadConfig_BrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt: [unclosed"), 0o600))

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

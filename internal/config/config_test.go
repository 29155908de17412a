package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gopherfeed", cfg.App.Name)
	assert.Equal(t, 5000, cfg.App.Port)
	assert.Equal(t, 168, cfg.Auth.TokenTTLHour)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTPAddr())
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[app]
port = 8081

[auth]
jwt_secret = "from-file"
token_ttl_hour = 24
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	// Environment beats the file; the file beats the defaults.
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHour)
	assert.Equal(t, 8081, cfg.App.Port)
}

func TestMySQLDSN(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t,
		"root:@tcp(127.0.0.1:3306)/gopherfeed?parseTime=true&loc=Local&charset=utf8mb4",
		cfg.MySQLDSN(),
	)
}

func TestGetEnvAsInt_BadValueFallsBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("APP_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.App.Port)
}

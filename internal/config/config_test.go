package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	cwd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	return tmp
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "DB_DSN", "QUERY_TIMEOUT", "APP_ADDR", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "MIGRATIONS_DIR"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, defaultDSN, cfg.DatabaseDSN)
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "internal/database/migrations", cfg.MigrationsDir)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DB_DSN", "postgres://u:p@db:5432/x")
	t.Setenv("QUERY_TIMEOUT", "750ms")
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DatabaseDSN)
	assert.Equal(t, 750*time.Millisecond, cfg.QueryTimeout)
	assert.Equal(t, "/custom/migrations", cfg.MigrationsDir)
}

func TestLoad_Invalid(t *testing.T) {
	chdirTemp(t)

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("QUERY_TIMEOUT", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "QUERY_TIMEOUT")
	})

	t.Run("unknown env", func(t *testing.T) {
		t.Setenv("APP_ENV", "staging-ish")
		_, err := Load()
		assert.ErrorContains(t, err, "config validation failed")
	})

	t.Run("zero burst", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_BURST", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := chdirTemp(t)
	p := filepath.Join(tmp, ".env")
	require.NoError(t, os.WriteFile(p, []byte("DB_DSN=from_file\nAPP_ADDR=:9999\n"), 0644))

	t.Setenv("DB_DSN", "from_env")
	t.Setenv("APP_ADDR", "")
	_ = os.Unsetenv("APP_ADDR")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.DatabaseDSN)
	assert.Equal(t, ":9999", cfg.ServerAddr)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{"HTTP_ADDR", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "MAX_UPLOAD_MB", "IMPORT_SHAPE"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, ":3001", cfg.Server.Addr)
	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 50, cfg.Import.MaxUploadMB)
	assert.Equal(t, int64(50<<20), cfg.Import.MaxUploadBytes())
	assert.Equal(t, "auto", cfg.Import.Shape)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/inventario?sslmode=disable")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("MAX_UPLOAD_MB", "5")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5, cfg.Import.MaxUploadMB)
}

// unsetEnv removes key for the duration of the test. godotenv never overrides
// a variable that is present, even when empty.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	unsetEnv(t, "IMPORT_SHAPE")
	unsetEnv(t, "HTTP_ADDR")
	t.Setenv("LOG_LEVEL", "debug")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("IMPORT_SHAPE=positional\nHTTP_ADDR=:8080\nLOG_LEVEL=warn\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "positional", cfg.Import.Shape)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"LOG_FORMAT", "xml"},
		{"IMPORT_SHAPE", "diagonal"},
		{"MAX_UPLOAD_MB", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(missingEnvFile(t))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

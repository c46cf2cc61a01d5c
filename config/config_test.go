package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "ALLOWED_HOSTS", "CORS_ORIGINS", "SHUTDOWN_TIMEOUT", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.AllowedHosts)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("ALLOWED_HOSTS", "correlaid.org, www.correlaid.org ,,")
	t.Setenv("CORS_ORIGINS", "https://correlaid.org")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"correlaid.org", "www.correlaid.org"}, cfg.AllowedHosts)
	assert.Equal(t, []string{"https://correlaid.org"}, cfg.CORSOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "bad timeout", key: "SHUTDOWN_TIMEOUT", value: "soon", wantErr: "SHUTDOWN_TIMEOUT"},
		{name: "bad gin mode", key: "GIN_MODE", value: "loud", wantErr: "GIN_MODE"},
		{name: "bad log format", key: "LOG_FORMAT", value: "xml", wantErr: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nCORS_ORIGINS=https://a.example\n"), 0o600))

	// Register the keys with t.Setenv so they are restored after the test,
	// then clear them so godotenv is allowed to set them.
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	os.Unsetenv("PORT")
	os.Unsetenv("CORS_ORIGINS")

	require.NoError(t, LoadDotEnv(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, []string{"https://a.example"}, cfg.CORSOrigins)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/embedding"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "GEMINI_API_KEY", "PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, embedding.ProviderGemini, cfg.Embedding.Provider)
	assert.Equal(t, embedding.DefaultGeminiModel, cfg.Embedding.Model)
	assert.False(t, cfg.HistoryEnabled())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	content := `
port: 9090
classifier_path: models/fit.json
embedding:
  provider: hashing
  dimension: 128
log:
  json: true
`
	path := filepath.Join(t.TempDir(), "screener.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "models/fit.json", cfg.ClassifierPath)
	assert.Equal(t, embedding.ProviderHashing, cfg.Embedding.Provider)
	assert.Equal(t, 128, cfg.Embedding.Dimension)
	assert.True(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Debug)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("SCREENER_EMBEDDING_PROVIDER", "hashing")
	t.Setenv("SCREENER_LOG_DEBUG", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "secret", cfg.Embedding.APIKey)
	assert.Equal(t, embedding.ProviderHashing, cfg.Embedding.Provider)
	assert.True(t, cfg.Log.Debug)
	assert.True(t, cfg.HistoryEnabled())
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ invalid json }`), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	classifier := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(classifier, []byte(`{}`), 0o644))

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "classifier present", mutate: func(c *Config) { c.ClassifierPath = classifier }},
		{name: "bad port", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "'port' out of range"},
		{name: "negative upload", mutate: func(c *Config) { c.MaxUploadBytes = -1 }, wantErr: "max_upload_bytes"},
		{name: "missing classifier", mutate: func(c *Config) { c.ClassifierPath = "/nope/model.json" }, wantErr: "classifier file not found"},
		{name: "bad database url", mutate: func(c *Config) { c.DatabaseURL = "mysql://x" }, wantErr: "postgres URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ProviderOpenAI, cfg.Inference.Provider)
	assert.Equal(t, 30*time.Second, cfg.Inference.Timeout)
	assert.Equal(t, 1, cfg.Pipeline.Workers)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	path := writeConfig(t, `
paths:
  input: in.csv
  output: out/result.csv
  mapping: mapping.tsv
inference:
  provider: none
  timeout: 45s
  max_tokens: 500
pipeline:
  workers: 4
logging:
  level: debug
  format: console
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "in.csv", cfg.Paths.Input)
	assert.Equal(t, "out/result.csv", cfg.Paths.Output)
	assert.Equal(t, "mapping.tsv", cfg.Paths.Mapping)
	assert.Equal(t, ProviderNone, cfg.Inference.Provider)
	assert.Equal(t, 45*time.Second, cfg.Inference.Timeout)
	assert.Equal(t, 500, cfg.Inference.MaxTokens)
	assert.InDelta(t, 0.3, cfg.Inference.Temperature, 1e-9)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.APIKey())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TEACHREACH_PROVIDER", " Gemini ")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("TEACHREACH_TIMEOUT", "5s")
	t.Setenv("TEACHREACH_WORKERS", "8")
	t.Setenv("TEACHREACH_TEMPERATURE", "0.7")

	cfg, err := Load(writeConfig(t, "pipeline:\n  workers: 2\n"))
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.Inference.Provider)
	assert.Equal(t, "g-key", cfg.APIKey())
	assert.Equal(t, 8, cfg.Pipeline.Workers)

	pc := cfg.ProviderConfig()
	assert.Equal(t, "g-key", pc.APIKey)
	assert.Equal(t, 5*time.Second, pc.Timeout)
	assert.InDelta(t, 0.7, pc.Temperature, 1e-9)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "bad yaml", body: "paths: [\n"},
		{name: "zero workers", body: "pipeline:\n  workers: 0\n"},
		{name: "unknown provider", body: "inference:\n  provider: claude\n"},
		{name: "bad log level", body: "logging:\n  level: loud\n"},
		{name: "bad base url", body: "inference:\n  base_url: not a url\n"},
		{name: "bad env integer", env: map[string]string{"TEACHREACH_WORKERS": "many"}},
		{name: "bad env duration", env: map[string]string{"TEACHREACH_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

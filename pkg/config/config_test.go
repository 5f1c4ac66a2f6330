package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/germanamz/askly/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.DefaultProvider)
	assert.Equal(t, []string{"anthropic", "local_mcp", "openai"}, cfg.ProviderNames())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	require.NoError(t, config.Save(config.Default(), path))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.DefaultProvider)
	assert.Equal(t, []string{"anthropic", "local_mcp", "openai"}, cfg.ProviderNames())

	oa := cfg.Providers["openai"]
	assert.Equal(t, "https://api.openai.com", oa.BaseURL)
	assert.Equal(t, "OPENAI_API_KEY", oa.APIKeyEnv)
	assert.Equal(t, "gpt-4", oa.Model)
	assert.Equal(t, 1024, oa.MaxTokens)
	assert.Equal(t, 60, oa.Timeout)
}

func TestLoad_AppliesTimeoutDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `default_provider: mine
providers:
  mine:
    base_url: http://localhost:9090
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Providers["mine"].Timeout)
}

func TestLoad_DefaultProviderFallsBackToOpenAI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `providers:
  openai:
    base_url: https://api.openai.com
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.DefaultProvider)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- this\n- is a list\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_MissingBaseURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `providers:
  broken:
    model: some-model
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestSave_NeverStoresSecrets(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-very-secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.Save(config.Default(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "sk-very-secret")
	assert.Contains(t, string(data), "OPENAI_API_KEY")
}

func TestResolve(t *testing.T) {
	cfg := config.Default()

	name, p, ok := cfg.Resolve("anthropic")
	require.True(t, ok)
	assert.Equal(t, "anthropic", name)
	assert.Equal(t, "https://api.anthropic.com", p.BaseURL)
}

func TestResolve_EmptyNameUsesDefault(t *testing.T) {
	cfg := config.Default()

	name, p, ok := cfg.Resolve("")
	require.True(t, ok)
	assert.Equal(t, "openai", name)
	assert.Equal(t, "https://api.openai.com", p.BaseURL)
}

func TestResolve_Unknown(t *testing.T) {
	cfg := config.Default()

	name, _, ok := cfg.Resolve("nope")
	assert.False(t, ok)
	assert.Equal(t, "nope", name)
}

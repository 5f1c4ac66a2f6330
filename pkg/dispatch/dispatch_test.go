package dispatch_test

import (
	"testing"

	"github.com/germanamz/askly/pkg/config"
	"github.com/germanamz/askly/pkg/dispatch"
	"github.com/germanamz/askly/pkg/provider/anthropic"
	"github.com/germanamz/askly/pkg/provider/generic"
	"github.com/germanamz/askly/pkg/provider/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLookup(string) (string, bool) { return "test-key", true }

func testConfig(baseURL string) config.Config {
	return config.Config{
		DefaultProvider: "p",
		Providers: map[string]config.Provider{
			"p": {BaseURL: baseURL, APIKeyEnv: "KEY", Timeout: 5},
		},
	}
}

func TestNewWithLookup_SelectsOpenAI(t *testing.T) {
	p, err := dispatch.NewWithLookup("p", testConfig("https://api.openai.com"), testLookup)
	require.NoError(t, err)
	assert.IsType(t, &openai.Adapter{}, p)
}

func TestNewWithLookup_SelectsAnthropic(t *testing.T) {
	p, err := dispatch.NewWithLookup("p", testConfig("https://api.anthropic.com"), testLookup)
	require.NoError(t, err)
	assert.IsType(t, &anthropic.Adapter{}, p)
}

func TestNewWithLookup_FallsThroughToGeneric(t *testing.T) {
	p, err := dispatch.NewWithLookup("p", testConfig("http://localhost:8080"), testLookup)
	require.NoError(t, err)
	assert.IsType(t, &generic.Adapter{}, p)
}

func TestNewWithLookup_MatchIsCaseInsensitive(t *testing.T) {
	p, err := dispatch.NewWithLookup("p", testConfig("https://API.OPENAI.COM"), testLookup)
	require.NoError(t, err)
	assert.IsType(t, &openai.Adapter{}, p)
}

func TestNewWithLookup_ProxyDomainBecomesGeneric(t *testing.T) {
	// An OpenAI-compatible proxy under another domain is not recognized;
	// the heuristic is substring-only.
	p, err := dispatch.NewWithLookup("p", testConfig("https://llm.example.com"), testLookup)
	require.NoError(t, err)
	assert.IsType(t, &generic.Adapter{}, p)
}

func TestNewWithLookup_UnknownProvider(t *testing.T) {
	cfg := config.Config{
		DefaultProvider: "openai",
		Providers: map[string]config.Provider{
			"openai":    {BaseURL: "https://api.openai.com"},
			"anthropic": {BaseURL: "https://api.anthropic.com"},
		},
	}

	_, err := dispatch.NewWithLookup("nope", cfg, testLookup)

	var ue *dispatch.UnknownProviderError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "nope", ue.Name)
	assert.Equal(t, []string{"anthropic", "openai"}, ue.Known)
	assert.Contains(t, ue.Error(), "anthropic")
	assert.Contains(t, ue.Error(), "openai")
}

func TestNewWithLookup_CredentialFailurePropagates(t *testing.T) {
	_, err := dispatch.NewWithLookup("p", testConfig("https://api.openai.com"),
		func(string) (string, bool) { return "", false })
	require.Error(t, err)
}

// Package config loads and persists the askly configuration file. Secrets
// are never stored: provider entries carry only the name of the environment
// variable holding the API key, resolved at adapter construction time.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// defaultTimeout is the per-provider HTTP timeout in seconds applied when
// the config file does not set one.
const defaultTimeout = 60

// Provider describes the connection settings for a single LLM provider.
type Provider struct {
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"` //nolint:gosec // name of an env var, not a secret
	Model     string `yaml:"model,omitempty"`
	MaxTokens int    `yaml:"max_tokens,omitempty"`
	Timeout   int    `yaml:"timeout,omitempty"` // Whole-exchange HTTP timeout in seconds.
}

// Config is the top-level askly configuration.
type Config struct {
	DefaultProvider string              `yaml:"default_provider"`
	Providers       map[string]Provider `yaml:"providers"`
}

// Default returns the built-in configuration used when no config file
// exists on disk.
func Default() Config {
	return Config{
		DefaultProvider: "openai",
		Providers: map[string]Provider{
			"openai": {
				BaseURL:   "https://api.openai.com",
				APIKeyEnv: "OPENAI_API_KEY",
				Model:     "gpt-4",
				MaxTokens: 1024,
				Timeout:   defaultTimeout,
			},
			"anthropic": {
				BaseURL:   "https://api.anthropic.com",
				APIKeyEnv: "ANTHROPIC_API_KEY",
				Model:     "claude-3-5-sonnet-20241022",
				MaxTokens: 1024,
				Timeout:   defaultTimeout,
			},
			"local_mcp": {
				BaseURL:   "http://localhost:8080",
				Model:     "local-model",
				MaxTokens: 1024,
				Timeout:   defaultTimeout,
			},
		},
	}
}

// DefaultPath returns the default config file location inside the per-user
// config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve user config dir: %w", err)
	}

	return filepath.Join(dir, "askly", "config.yaml"), nil
}

// Load reads the config file at path, or the default path when path is
// empty. A missing file is not an error: the built-in default configuration
// is returned instead.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save marshals cfg to YAML and writes it to path, or the default path when
// path is empty. Parent directories are created as needed.
func Save(cfg Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("config: create parent dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config file, not a secret
		return fmt.Errorf("config: write: %w", err)
	}

	return nil
}

// applyDefaults fills in values the config file may omit.
func (c *Config) applyDefaults() {
	if c.DefaultProvider == "" {
		c.DefaultProvider = "openai"
	}

	for name, p := range c.Providers {
		if p.Timeout == 0 {
			p.Timeout = defaultTimeout
			c.Providers[name] = p
		}
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	for name, p := range c.Providers {
		if name == "" {
			return fmt.Errorf("config: provider name is required")
		}
		if p.BaseURL == "" {
			return fmt.Errorf("config: provider %q: base_url is required", name)
		}
		if p.Timeout < 0 {
			return fmt.Errorf("config: provider %q: timeout must be positive", name)
		}
	}

	return nil
}

// Resolve returns the provider entry for name, falling back to the
// configured default provider when name is empty. The returned string is
// the name actually resolved.
func (c Config) Resolve(name string) (string, Provider, bool) {
	if name == "" {
		name = c.DefaultProvider
	}

	p, ok := c.Providers[name]

	return name, p, ok
}

// ProviderNames returns the configured provider names in sorted order.
func (c Config) ProviderNames() []string {
	names := make([]string, 0, len(c.Providers))
	for name := range c.Providers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Package dispatch selects and constructs the provider adapter for a
// configured provider name.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/germanamz/askly/pkg/config"
	"github.com/germanamz/askly/pkg/provider"
	"github.com/germanamz/askly/pkg/provider/anthropic"
	"github.com/germanamz/askly/pkg/provider/generic"
	"github.com/germanamz/askly/pkg/provider/openai"
)

// UnknownProviderError is returned when the requested provider name is not
// present in the configuration. It enumerates the known names to aid the
// caller.
type UnknownProviderError struct {
	Name  string
	Known []string // Sorted provider names from the config.
}

func (e *UnknownProviderError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown provider %q: no providers configured", e.Name)
	}
	return fmt.Sprintf("unknown provider %q (known providers: %s)", e.Name, strings.Join(e.Known, ", "))
}

// New constructs the adapter for the named provider using the process
// environment for credential resolution.
func New(name string, cfg config.Config) (provider.Completer, error) {
	return NewWithLookup(name, cfg, nil)
}

// NewWithLookup constructs the adapter for the named provider, resolving
// credentials through the given lookup. The adapter type is chosen by a
// case-insensitive substring match on the configured base URL: an OpenAI
// domain selects the OpenAI adapter, an Anthropic domain the Anthropic
// adapter, and anything else falls through to the generic HTTP adapter.
// The match is a best-effort heuristic: an OpenAI-compatible proxy under
// another domain silently becomes a generic target.
func NewWithLookup(name string, cfg config.Config, lookup provider.CredentialLookup) (provider.Completer, error) {
	pc, ok := cfg.Providers[name]
	if !ok {
		return nil, &UnknownProviderError{Name: name, Known: cfg.ProviderNames()}
	}

	base := strings.ToLower(pc.BaseURL)

	switch {
	case strings.Contains(base, "openai.com"):
		return openai.New(pc, lookup)
	case strings.Contains(base, "anthropic.com"):
		return anthropic.New(pc, lookup)
	default:
		return generic.New(pc), nil
	}
}

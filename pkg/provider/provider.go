// Package provider defines the Completer contract implemented by every LLM
// provider adapter, the normalized Result all adapters produce, and the
// shared HTTP adapter base they embed.
package provider

import (
	"context"
	"os"

	"github.com/germanamz/askly/pkg/provider/usage"
)

// Options holds per-call overrides for a completion request. Zero values
// mean "not supplied" and fall through to the provider's configured
// defaults. Temperature is a pointer so an unset value can be told apart
// from an explicit zero; when nil the vendor's own default applies.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature *float64
}

// Result is the normalized outcome of a single completion call. Every
// adapter produces this same shape regardless of the vendor wire format.
type Result struct {
	ID    string            // Vendor-assigned request identifier, or a synthesized one.
	Text  string            // The completion payload.
	Model string            // Model actually used, echoed from the response where available.
	Usage *usage.TokenUsage // Token accounting; nil when the vendor omits usage data.
}

// Completer sends a single prompt to an LLM and returns the normalized
// result. Implementations perform exactly one HTTP exchange per call and
// surface failures to the caller without retrying.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts Options) (Result, error)
}

// UsageReporter exposes accumulated token usage from a completer.
// Completers that embed Adapter implement this interface automatically.
type UsageReporter interface {
	UsageTracker() *usage.Tracker
}

// CredentialLookup resolves the name of an environment variable to its
// value. Tests inject their own lookup instead of mutating the process
// environment.
type CredentialLookup func(name string) (string, bool)

// ResolveCredential returns the secret held in the named environment
// variable. A nil lookup falls back to os.LookupEnv. An empty name or an
// unset variable yields a MissingCredentialError.
func ResolveCredential(envName string, lookup CredentialLookup) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if envName == "" {
		return "", &MissingCredentialError{}
	}

	key, ok := lookup(envName)
	if !ok || key == "" {
		return "", &MissingCredentialError{EnvVar: envName}
	}

	return key, nil
}

// Coalesce returns the first non-zero value. All adapters resolve their
// request fields through this one cascade: explicit override, then
// configured default, then hardcoded fallback.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}

	return zero
}

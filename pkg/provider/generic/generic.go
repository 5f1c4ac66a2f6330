// Package generic provides a Completer implementation for self-hosted
// completion servers that speak a plain JSON completion shape, such as a
// local MCP sidecar. Unlike the hosted vendor adapters it requires no
// credential and tolerates missing response fields.
package generic

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/germanamz/askly/pkg/config"
	"github.com/germanamz/askly/pkg/provider"
	"github.com/germanamz/askly/pkg/provider/usage"
)

const (
	completionsPath   = "/v1/completions"
	fallbackModel     = "default"
	fallbackMaxTokens = 1024
	fallbackID        = "unknown"
)

var _ provider.Completer = (*Adapter)(nil)

// Adapter implements provider.Completer for generic HTTP completion
// servers. Authentication, if any, is the remote's responsibility.
type Adapter struct {
	provider.Adapter
}

// New creates an Adapter from the given provider config. Construction
// always succeeds.
func New(cfg config.Provider) *Adapter {
	a := &Adapter{}
	a.BaseURL = cfg.BaseURL
	a.DefaultModel = cfg.Model
	a.DefaultMaxTokens = cfg.MaxTokens
	a.Client = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}

	return a
}

// Complete sends a prompt to the server's completions endpoint and returns
// the normalized result. The remote never echoes the model, so the result
// carries the model that was requested.
func (a *Adapter) Complete(ctx context.Context, prompt string, opts provider.Options) (provider.Result, error) {
	model := provider.Coalesce(opts.Model, a.DefaultModel, fallbackModel)

	req := apiRequest{
		Model:       model,
		Input:       prompt,
		MaxTokens:   provider.Coalesce(opts.MaxTokens, a.DefaultMaxTokens, fallbackMaxTokens),
		Stream:      false,
		Temperature: opts.Temperature,
	}

	var resp apiResponse
	if err := a.PostJSON(ctx, completionsPath, req, &resp); err != nil {
		return provider.Result{}, fmt.Errorf("generic: %w", err)
	}

	id := resp.ID
	if id == "" {
		id = fallbackID
	}

	// Usage stays nil when the server reports none; a zeroed value would
	// be indistinguishable from a real zero-token response.
	var u *usage.TokenUsage
	if resp.TokenUsage != nil {
		u = &usage.TokenUsage{
			PromptTokens:     resp.TokenUsage.Prompt,
			CompletionTokens: resp.TokenUsage.Completion,
			TotalTokens:      resp.TokenUsage.Prompt + resp.TokenUsage.Completion,
		}
		a.Usage.Add(*u)
	}

	return provider.Result{
		ID:    id,
		Text:  resp.Output,
		Model: model,
		Usage: u,
	}, nil
}

// --- request types ---

type apiRequest struct {
	Model       string   `json:"model"`
	Input       string   `json:"input"`
	MaxTokens   int      `json:"max_tokens"`
	Stream      bool     `json:"stream"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// --- response types ---

type apiResponse struct {
	ID         string         `json:"id"`
	Output     string         `json:"output"`
	TokenUsage *apiTokenUsage `json:"token_usage"`
}

type apiTokenUsage struct {
	Prompt     int `json:"prompt"`
	Completion int `json:"completion"`
}

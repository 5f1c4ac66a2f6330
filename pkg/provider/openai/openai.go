// Package openai provides a Completer implementation for the OpenAI Chat
// Completions API.
package openai

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
	completionsPath   = "/v1/chat/completions"
	fallbackModel     = "gpt-4o-mini"
	fallbackMaxTokens = 1024
)

var _ provider.Completer = (*Adapter)(nil)

// Adapter implements provider.Completer for the OpenAI Chat Completions API.
type Adapter struct {
	provider.Adapter
}

// New creates an Adapter from the given provider config. The API key is
// resolved from the configured environment variable up front; a missing
// credential fails here, before any network call. A nil lookup falls back
// to the process environment.
func New(cfg config.Provider, lookup provider.CredentialLookup) (*Adapter, error) {
	key, err := provider.ResolveCredential(cfg.APIKeyEnv, lookup)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	a := &Adapter{}
	a.BaseURL = cfg.BaseURL
	a.Auth = provider.Auth{Key: key}
	a.DefaultModel = cfg.Model
	a.DefaultMaxTokens = cfg.MaxTokens
	a.Client = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}

	return a, nil
}

// Complete sends a single-turn prompt to the OpenAI Chat Completions API
// and returns the normalized result.
func (a *Adapter) Complete(ctx context.Context, prompt string, opts provider.Options) (provider.Result, error) {
	req := apiRequest{
		Model:       provider.Coalesce(opts.Model, a.DefaultModel, fallbackModel),
		Messages:    []apiMessage{{Role: "user", Content: prompt}},
		MaxTokens:   provider.Coalesce(opts.MaxTokens, a.DefaultMaxTokens, fallbackMaxTokens),
		Temperature: opts.Temperature,
	}

	var resp apiResponse
	if err := a.PostJSON(ctx, completionsPath, req, &resp); err != nil {
		return provider.Result{}, fmt.Errorf("openai: %w", err)
	}

	if resp.ID == "" {
		return provider.Result{}, fmt.Errorf("openai: %w", &provider.MalformedResponseError{Field: "id"})
	}
	if resp.Model == "" {
		return provider.Result{}, fmt.Errorf("openai: %w", &provider.MalformedResponseError{Field: "model"})
	}
	if len(resp.Choices) == 0 {
		return provider.Result{}, fmt.Errorf("openai: %w", &provider.MalformedResponseError{Field: "choices"})
	}

	// Missing numeric usage fields decode to zero, which is the documented
	// behaviour for this vendor's adapter.
	u := &usage.TokenUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	a.Usage.Add(*u)

	return provider.Result{
		ID:    resp.ID,
		Text:  resp.Choices[0].Message.Content,
		Model: resp.Model,
		Usage: u,
	}, nil
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens"`
	Temperature *float64     `json:"temperature,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- response types ---

type apiResponse struct {
	ID      string      `json:"id"`
	Model   string      `json:"model"`
	Choices []apiChoice `json:"choices"`
	Usage   apiUsage    `json:"usage"`
}

type apiChoice struct {
	Message apiRespMessage `json:"message"`
}

type apiRespMessage struct {
	Content string `json:"content"`
}

type apiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Package anthropic provides a Completer implementation for the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/germanamz/askly/pkg/config"
	"github.com/germanamz/askly/pkg/provider"
	"github.com/germanamz/askly/pkg/provider/usage"
)

const (
	messagesPath      = "/v1/messages"
	fallbackModel     = "claude-3-5-sonnet-20241022"
	fallbackMaxTokens = 1024
)

var _ provider.Completer = (*Adapter)(nil)

// Adapter implements provider.Completer for the Anthropic Messages API.
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
		return nil, fmt.Errorf("anthropic: %w", err)
	}

	a := &Adapter{}
	a.BaseURL = cfg.BaseURL
	a.Auth = provider.Auth{
		Key:    key,
		Header: "x-api-key",
	}
	a.Headers = map[string]string{
		"anthropic-version": "2023-06-01",
	}
	a.DefaultModel = cfg.Model
	a.DefaultMaxTokens = cfg.MaxTokens
	a.Client = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}

	return a, nil
}

// Complete sends a single-turn prompt to the Anthropic Messages API and
// returns the normalized result.
func (a *Adapter) Complete(ctx context.Context, prompt string, opts provider.Options) (provider.Result, error) {
	// This API has no server-side default for max_tokens; the field is
	// always sent.
	req := apiRequest{
		Model:       provider.Coalesce(opts.Model, a.DefaultModel, fallbackModel),
		MaxTokens:   provider.Coalesce(opts.MaxTokens, a.DefaultMaxTokens, fallbackMaxTokens),
		Messages:    []apiMessage{{Role: "user", Content: prompt}},
		Temperature: opts.Temperature,
	}

	var resp apiResponse
	if err := a.PostJSON(ctx, messagesPath, req, &resp); err != nil {
		return provider.Result{}, fmt.Errorf("anthropic: %w", err)
	}

	if resp.ID == "" {
		return provider.Result{}, fmt.Errorf("anthropic: %w", &provider.MalformedResponseError{Field: "id"})
	}
	if resp.Model == "" {
		return provider.Result{}, fmt.Errorf("anthropic: %w", &provider.MalformedResponseError{Field: "model"})
	}
	if len(resp.Content) == 0 {
		return provider.Result{}, fmt.Errorf("anthropic: %w", &provider.MalformedResponseError{Field: "content"})
	}

	var text strings.Builder
	for _, block := range resp.Content {
		text.WriteString(block.Text)
	}

	// This vendor reports input/output counts but no total; derive it.
	u := &usage.TokenUsage{
		PromptTokens:     resp.Usage.InputTokens,
		CompletionTokens: resp.Usage.OutputTokens,
		TotalTokens:      resp.Usage.InputTokens + resp.Usage.OutputTokens,
	}
	a.Usage.Add(*u)

	return provider.Result{
		ID:    resp.ID,
		Text:  text.String(),
		Model: resp.Model,
		Usage: u,
	}, nil
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	MaxTokens   int          `json:"max_tokens"`
	Messages    []apiMessage `json:"messages"`
	Temperature *float64     `json:"temperature,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- response types ---

type apiResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Content []apiContent `json:"content"`
	Usage   apiUsage     `json:"usage"`
}

type apiContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

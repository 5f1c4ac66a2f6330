// Package usage defines token usage accounting for LLM completion calls.
package usage

import "sync"

// TokenUsage holds token counts for a single completion call. For an
// internally consistent value, TotalTokens equals PromptTokens plus
// CompletionTokens; adapters whose vendor does not report a total derive
// it as the sum.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Sum returns PromptTokens plus CompletionTokens.
func (u TokenUsage) Sum() int {
	return u.PromptTokens + u.CompletionTokens
}

// Tracker accumulates token usage across multiple completion calls.
// It is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	entries []TokenUsage
}

// Add records a usage entry.
func (t *Tracker) Add(u TokenUsage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, u)
}

// Last returns the most recent usage entry.
// The bool is false when the tracker has no entries.
func (t *Tracker) Last() (TokenUsage, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.entries) == 0 {
		return TokenUsage{}, false
	}

	return t.entries[len(t.entries)-1], true
}

// Total returns the aggregate usage across all entries.
func (t *Tracker) Total() TokenUsage {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total TokenUsage
	for _, e := range t.entries {
		total.PromptTokens += e.PromptTokens
		total.CompletionTokens += e.CompletionTokens
		total.TotalTokens += e.TotalTokens
	}

	return total
}

// Count returns the number of recorded entries.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}

// Reset clears all recorded entries.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = nil
}

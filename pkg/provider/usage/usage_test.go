package usage_test

import (
	"sync"
	"testing"

	"github.com/germanamz/askly/pkg/provider/usage"
	"github.com/stretchr/testify/assert"
)

func TestTokenUsage_Sum(t *testing.T) {
	u := usage.TokenUsage{PromptTokens: 100, CompletionTokens: 50}
	assert.Equal(t, 150, u.Sum())
}

func TestTokenUsage_Sum_Zero(t *testing.T) {
	u := usage.TokenUsage{}
	assert.Equal(t, 0, u.Sum())
}

func TestTracker_Add_And_Count(t *testing.T) {
	var tr usage.Tracker

	assert.Equal(t, 0, tr.Count())

	tr.Add(usage.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15})
	assert.Equal(t, 1, tr.Count())

	tr.Add(usage.TokenUsage{PromptTokens: 20, CompletionTokens: 10, TotalTokens: 30})
	assert.Equal(t, 2, tr.Count())
}

func TestTracker_Last_Empty(t *testing.T) {
	var tr usage.Tracker

	u, ok := tr.Last()
	assert.False(t, ok)
	assert.Equal(t, usage.TokenUsage{}, u)
}

func TestTracker_Last(t *testing.T) {
	var tr usage.Tracker

	tr.Add(usage.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15})
	tr.Add(usage.TokenUsage{PromptTokens: 20, CompletionTokens: 10, TotalTokens: 30})

	u, ok := tr.Last()
	assert.True(t, ok)
	assert.Equal(t, usage.TokenUsage{PromptTokens: 20, CompletionTokens: 10, TotalTokens: 30}, u)
}

func TestTracker_Total(t *testing.T) {
	var tr usage.Tracker

	tr.Add(usage.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15})
	tr.Add(usage.TokenUsage{PromptTokens: 20, CompletionTokens: 10, TotalTokens: 30})

	total := tr.Total()
	assert.Equal(t, 30, total.PromptTokens)
	assert.Equal(t, 15, total.CompletionTokens)
	assert.Equal(t, 45, total.TotalTokens)
}

func TestTracker_Reset(t *testing.T) {
	var tr usage.Tracker

	tr.Add(usage.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15})
	tr.Reset()

	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, usage.TokenUsage{}, tr.Total())
}

func TestTracker_ConcurrentAdd(t *testing.T) {
	var tr usage.Tracker

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Add(usage.TokenUsage{PromptTokens: 1, CompletionTokens: 1, TotalTokens: 2})
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, tr.Count())
	assert.Equal(t, 20, tr.Total().TotalTokens)
}

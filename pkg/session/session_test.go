package session_test

import (
	"testing"

	"github.com/germanamz/askly/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_History(t *testing.T) {
	s := session.New()

	s.AddUserMessage("Hello")
	s.AddAssistantMessage("Hi there!")

	history := s.History()
	require.Len(t, history, 2)

	assert.Equal(t, session.User, history[0].Role)
	assert.Equal(t, "Hello", history[0].Content)
	assert.Equal(t, session.Assistant, history[1].Role)
	assert.Equal(t, "Hi there!", history[1].Content)
}

func TestSession_HistoryIsACopy(t *testing.T) {
	s := session.New()
	s.AddUserMessage("original")

	history := s.History()
	history[0].Content = "mutated"

	assert.Equal(t, "original", s.History()[0].Content)
}

func TestSession_Transcript(t *testing.T) {
	s := session.New()

	s.AddUserMessage("Hello")
	s.AddAssistantMessage("Hi there!")

	assert.Equal(t, "User: Hello\nAssistant: Hi there!", s.Transcript())
}

func TestSession_Transcript_Empty(t *testing.T) {
	assert.Equal(t, "", session.New().Transcript())
}

func TestSession_Clear(t *testing.T) {
	s := session.New()

	s.AddUserMessage("Hello")
	s.AddAssistantMessage("Hi there!")
	require.Equal(t, 2, s.Len())

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.History())
}

func TestSession_InsertionOrderPreserved(t *testing.T) {
	s := session.New()

	s.AddUserMessage("one")
	s.AddUserMessage("two")
	s.AddAssistantMessage("three")
	s.AddUserMessage("four")

	history := s.History()
	require.Len(t, history, 4)

	var contents []string
	for _, m := range history {
		contents = append(contents, m.Content)
	}

	assert.Equal(t, []string{"one", "two", "three", "four"}, contents)
}

// Package session provides an in-memory, append-only record of a chat
// conversation's turns.
package session

import "strings"

// Role identifies the sender of a message.
type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
)

// Message is a single role-tagged entry in the conversation. Messages are
// never mutated after creation.
type Message struct {
	Role    Role
	Content string
}

// Session is an insertion-ordered conversation log. It lives only for the
// duration of the chat loop that created it and is never persisted or sent
// to a provider. Session is not safe for concurrent use.
type Session struct {
	messages []Message
}

// New creates an empty Session.
func New() *Session {
	return &Session{}
}

// AddUserMessage appends a user-role message.
func (s *Session) AddUserMessage(content string) {
	s.messages = append(s.messages, Message{Role: User, Content: content})
}

// AddAssistantMessage appends an assistant-role message.
func (s *Session) AddAssistantMessage(content string) {
	s.messages = append(s.messages, Message{Role: Assistant, Content: content})
}

// History returns a copy of the conversation in insertion order. Mutating
// the returned slice does not affect the session.
func (s *Session) History() []Message {
	cp := make([]Message, len(s.messages))
	copy(cp, s.messages)
	return cp
}

// Len returns the number of recorded messages.
func (s *Session) Len() int {
	return len(s.messages)
}

// Clear empties the session in place.
func (s *Session) Clear() {
	s.messages = s.messages[:0]
}

// Transcript renders the conversation for display, one "User: ..." or
// "Assistant: ..." line per message, joined by line breaks.
func (s *Session) Transcript() string {
	lines := make([]string, 0, len(s.messages))
	for _, m := range s.messages {
		prefix := "Assistant: "
		if m.Role == User {
			prefix = "User: "
		}
		lines = append(lines, prefix+m.Content)
	}

	return strings.Join(lines, "\n")
}

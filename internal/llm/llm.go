// Package llm abstracts the chat-completion collaborator used by the
// assistant and summary services.
package llm

import "context"

// Message is one turn in a completion prompt.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider produces one completion for an ordered prompt. Only the
// first candidate's text is ever used.
type Provider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Roles accepted in prompts and persisted chat history.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

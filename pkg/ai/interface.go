package ai

import (
	"context"
)

// Message is one prior turn of a conversation (shared type)
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries everything a provider needs to answer one message
type ChatRequest struct {
	System      string
	History     []Message
	UserMessage string
}

// ChatService is the interface for streaming chat completions.
// Implement this interface to add new AI providers (OpenAI, Ollama, etc.)
type ChatService interface {
	// StreamChat generates a reply, invoking emit once per content delta.
	// A non-nil error from emit aborts the stream.
	StreamChat(ctx context.Context, req ChatRequest, emit func(delta string) error) error
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)

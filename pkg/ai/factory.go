package ai

import (
	"context"
	"fmt"

	"codetutor-backend/pkg/openai"

	"go.uber.org/zap"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "openai", "ollama" or "auto"

	// OpenAI config
	OpenAIAPIKey string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"

	Logger *zap.Logger
}

// openAIChatService adapts openai.Service to the ChatService interface
type openAIChatService struct {
	svc *openai.Service
}

func (s *openAIChatService) StreamChat(ctx context.Context, req ChatRequest, emit func(delta string) error) error {
	history := make([]openai.Message, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, openai.Message{Role: m.Role, Content: m.Content})
	}
	return s.svc.StreamChat(ctx, req.System, history, req.UserMessage, emit)
}

// NewChatService creates a ChatService based on the config.
// This is the factory function - switch AI provider by changing
// config.Provider. In auto mode an OpenAI key selects OpenAI with Ollama
// as the fallback; without a key Ollama runs alone.
func NewChatService(cfg Config) (ChatService, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return &openAIChatService{svc: openai.NewService(cfg.OpenAIAPIKey)}, nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		if cfg.OpenAIAPIKey != "" {
			primary := &openAIChatService{svc: openai.NewService(cfg.OpenAIAPIKey)}
			secondary := NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)
			return NewFallbackService(primary, secondary, cfg.Logger), nil
		}
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	}
}

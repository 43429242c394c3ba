package usecase

import (
	"context"

	authdomain "codetutor-backend/internal/auth/domain"
	"codetutor-backend/internal/chat/domain"
	"codetutor-backend/internal/chat/dto"
)

// ChatUsecase defines the interface for tutoring conversation logic
type ChatUsecase interface {
	// StreamReply streams the tutor's answer to the user's message,
	// invoking emit once per delta. Consumes one prompt from the hourly
	// quota and persists both sides of the exchange.
	StreamReply(ctx context.Context, user *authdomain.User, req dto.ChatRequest, emit func(delta string) error) error

	// GetHistory returns the newest limit messages of a project's
	// conversation in chronological order (with ownership check)
	GetHistory(userID, projectID string, limit int) ([]*domain.ChatMessage, error)

	// InitialMessage returns the canned greeting for a project's template
	// (with ownership check)
	InitialMessage(userID, projectID string) (string, error)
}

package repository

import (
	"codetutor-backend/internal/chat/domain"
)

// ChatRepository defines the interface for chat message data access
type ChatRepository interface {
	// Create inserts a new chat message
	Create(message *domain.ChatMessage) error

	// FindOldestByProjectID returns up to limit messages from the start
	// of the conversation, in chronological order
	FindOldestByProjectID(projectID string, limit int) ([]*domain.ChatMessage, error)

	// FindRecentByProjectID returns up to limit of the newest messages,
	// in chronological order
	FindRecentByProjectID(projectID string, limit int) ([]*domain.ChatMessage, error)
}

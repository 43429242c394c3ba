package repository

import (
	"time"

	"codetutor-backend/internal/chat/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormChatRepository implements ChatRepository using GORM
type gormChatRepository struct {
	db *gorm.DB
}

// NewGormChatRepository creates a new GORM-based ChatRepository
func NewGormChatRepository(db *gorm.DB) ChatRepository {
	return &gormChatRepository{db: db}
}

func (r *gormChatRepository) Create(message *domain.ChatMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()
	return r.db.Create(message).Error
}

func (r *gormChatRepository) FindOldestByProjectID(projectID string, limit int) ([]*domain.ChatMessage, error) {
	var messages []*domain.ChatMessage
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at ASC").Limit(limit).Find(&messages).Error
	return messages, err
}

func (r *gormChatRepository) FindRecentByProjectID(projectID string, limit int) ([]*domain.ChatMessage, error) {
	var messages []*domain.ChatMessage
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// Newest-first from the query, chronological for the caller.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

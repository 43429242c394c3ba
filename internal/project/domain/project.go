package domain

import (
	"time"

	filedomain "codetutor-backend/internal/file/domain"
)

// Project represents a learner's workspace created from a starter template
type Project struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"index;not null"`
	Name         string    `json:"name" gorm:"not null"`
	TemplateType string    `json:"template_type" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastAccessed time.Time `json:"last_accessed"`

	Files []filedomain.File `json:"files,omitempty" gorm:"foreignKey:ProjectID"`
}

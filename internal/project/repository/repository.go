package repository

import (
	"codetutor-backend/internal/project/domain"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create inserts a new project
	Create(project *domain.Project) error

	// FindByID finds a project by its ID
	FindByID(id string) (*domain.Project, error)

	// FindByIDWithFiles finds a project with its files preloaded
	FindByIDWithFiles(id string) (*domain.Project, error)

	// FindByUserID lists a user's projects, newest first by the given
	// sort column ("created_at" or the default "last_accessed")
	FindByUserID(userID, sortBy string) ([]*domain.Project, error)

	// Update persists changes to an existing project
	Update(project *domain.Project) error

	// TouchLastAccessed stamps the project's last_accessed column
	TouchLastAccessed(id string) error

	// Delete removes a project together with its files and chat messages
	Delete(id string) error

	// CountByUserID reports how many projects a user owns
	CountByUserID(userID string) (int64, error)
}

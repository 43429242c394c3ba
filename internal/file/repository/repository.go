package repository

import (
	"codetutor-backend/internal/file/domain"
)

// FileRepository defines the interface for file data access
type FileRepository interface {
	// Create inserts a new file
	Create(file *domain.File) error

	// FindByID finds a file by its ID
	FindByID(id string) (*domain.File, error)

	// FindByProjectID lists all files in a project
	FindByProjectID(projectID string) ([]*domain.File, error)

	// FindByProjectIDAndName finds a file by name within a project
	FindByProjectIDAndName(projectID, name string) (*domain.File, error)

	// Update persists changes to an existing file
	Update(file *domain.File) error

	// Delete removes a file by ID
	Delete(id string) error
}

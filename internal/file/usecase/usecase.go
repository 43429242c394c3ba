package usecase

import (
	"codetutor-backend/internal/file/domain"
)

// FileUsecase defines the interface for file business logic
type FileUsecase interface {
	// CreateFile adds a file to a project, validating its type and
	// rejecting duplicate names (with ownership check)
	CreateFile(userID, projectID, name, fileType string, content *string) (*domain.File, error)

	// GetProjectFiles lists all files in a project (with ownership check)
	GetProjectFiles(userID, projectID string) ([]*domain.File, error)

	// UpdateFileContent overwrites a file's content; nil content is a
	// no-op (with ownership check)
	UpdateFileContent(userID, fileID string, content *string) (*domain.File, error)

	// RenameFile changes a file's name, rejecting duplicates within the
	// project (with ownership check)
	RenameFile(userID, fileID, name string) (*domain.File, error)

	// DeleteFile removes a file (with ownership check)
	DeleteFile(userID, fileID string) error
}

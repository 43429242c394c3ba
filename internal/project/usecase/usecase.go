package usecase

import (
	"codetutor-backend/internal/project/domain"
)

// ProjectUsecase defines the interface for project business logic
type ProjectUsecase interface {
	// CreateProject creates a project from a template together with its
	// starter files, enforcing the per-user project limit
	CreateProject(userID, name, templateType string) (*domain.Project, error)

	// GetUserProjects lists the user's projects sorted by the given column
	GetUserProjects(userID, sortBy string) ([]*domain.Project, error)

	// GetProjectByID returns a project with its files, stamping
	// last_accessed (with ownership check)
	GetProjectByID(userID, projectID string) (*domain.Project, error)

	// RenameProject changes a project's name (with ownership check)
	RenameProject(userID, projectID, name string) (*domain.Project, error)

	// DeleteProject removes a project and everything in it (with
	// ownership check)
	DeleteProject(userID, projectID string) error
}

package repository

import (
	"codetutor-backend/internal/auth/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(user *domain.User) error

	// FindByClerkID finds a user by their Clerk subject ID
	FindByClerkID(clerkUserID string) (*domain.User, error)

	// FindByID finds a user by internal ID
	FindByID(id string) (*domain.User, error)

	// Update persists changes to an existing user
	Update(user *domain.User) error
}

package usecase

import (
	"context"
	"time"

	"codetutor-backend/internal/auth/domain"
)

// TokenClaims carries the identity fields extracted from a verified token
type TokenClaims struct {
	Subject  string
	Email    string
	Username string
}

// AuthUsecase defines the interface for request authentication
type AuthUsecase interface {
	// VerifyToken validates the Authorization header value and returns the
	// token's identity claims
	VerifyToken(ctx context.Context, authorizationHeader string) (*TokenClaims, error)
}

// UserUsecase defines the interface for user account logic
type UserUsecase interface {
	// GetOrCreateUser resolves a verified token identity to a local account,
	// creating it on first sight
	GetOrCreateUser(clerkUserID, email, username string) (*domain.User, error)

	// GetMe returns the user's profile with the owned-project count filled in
	GetMe(user *domain.User) (*domain.User, error)
}

// RateLimiterUsecase defines the interface for the hourly AI-chat quota
type RateLimiterUsecase interface {
	// CheckAndConsume spends one prompt from the user's hourly quota.
	// Returns whether the prompt is allowed and how many remain.
	CheckAndConsume(user *domain.User) (allowed bool, remaining int, err error)

	// Status reports the remaining quota and when it resets, without
	// consuming anything
	Status(user *domain.User) (remaining int, resetAt time.Time)

	// Max returns the configured hourly prompt limit
	Max() int
}

// ProjectCounter reports how many projects a user owns
type ProjectCounter interface {
	CountByUserID(userID string) (int64, error)
}

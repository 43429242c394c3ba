package domain

import "time"

// User is an account resolved from a Clerk identity. ClerkUserID is the
// stable subject id carried in the verified token; the unique index on it is
// what makes concurrent first-sight creation safe (the loser re-fetches).
type User struct {
	ID          string `json:"id" gorm:"primaryKey"`
	ClerkUserID string `json:"clerk_user_id" gorm:"uniqueIndex;not null"`
	Email       string `json:"email" gorm:"not null"`
	Username    string `json:"username,omitempty"`

	// ProjectCount is computed from the projects table when serving the
	// profile; it is not maintained as a write path.
	ProjectCount int `json:"project_count" gorm:"-"`

	// Hourly AI-chat quota state. LastPromptReset is nil until the first
	// rate-limited request; the window is anchored at it.
	HourlyPromptCount int        `json:"hourly_prompt_count" gorm:"not null;default:0"`
	LastPromptReset   *time.Time `json:"last_prompt_reset,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

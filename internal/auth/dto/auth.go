package dto

import "time"

// RateLimitResponse reports the caller's remaining hourly AI-chat quota.
type RateLimitResponse struct {
	RemainingPrompts int       `json:"remaining_prompts"`
	ResetTime        time.Time `json:"reset_time"`
	MaxPrompts       int       `json:"max_prompts"`
}

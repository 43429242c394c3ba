package usecase

import (
	"time"

	"codetutor-backend/internal/auth/domain"
	"codetutor-backend/internal/auth/repository"
	"codetutor-backend/pkg/config"
)

// rateLimiter implements RateLimiterUsecase. The counter lives on the user
// row and is read-modify-written without per-user serialization, so
// concurrent requests from one user can overshoot the quota by a small
// margin.
type rateLimiter struct {
	userRepo repository.UserRepository
	max      int
	now      func() time.Time
}

// NewRateLimiter creates a new instance of rateLimiter
func NewRateLimiter(userRepo repository.UserRepository, cfg *config.Config) RateLimiterUsecase {
	return &rateLimiter{
		userRepo: userRepo,
		max:      cfg.MaxPromptsPerHour,
		now:      time.Now,
	}
}

func (r *rateLimiter) CheckAndConsume(user *domain.User) (bool, int, error) {
	now := r.now()

	if user.LastPromptReset == nil {
		user.LastPromptReset = &now
		if err := r.userRepo.Update(user); err != nil {
			return false, 0, err
		}
	} else if now.Sub(*user.LastPromptReset) > time.Hour {
		// Strictly more than one hour. Exactly one hour keeps the window.
		user.HourlyPromptCount = 0
		user.LastPromptReset = &now
		if err := r.userRepo.Update(user); err != nil {
			return false, 0, err
		}
	}

	if user.HourlyPromptCount >= r.max {
		return false, 0, nil
	}

	user.HourlyPromptCount++
	if err := r.userRepo.Update(user); err != nil {
		return false, 0, err
	}
	return true, r.max - user.HourlyPromptCount, nil
}

func (r *rateLimiter) Max() int {
	return r.max
}

func (r *rateLimiter) Status(user *domain.User) (int, time.Time) {
	now := r.now()

	remaining := r.max - user.HourlyPromptCount
	if remaining < 0 {
		remaining = 0
	}

	resetAt := now.Add(time.Hour)
	if user.LastPromptReset != nil {
		if t := user.LastPromptReset.Add(time.Hour); !t.Before(now) {
			resetAt = t
		}
	}
	return remaining, resetAt
}

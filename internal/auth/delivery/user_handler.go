package delivery

import (
	"net/http"

	"codetutor-backend/internal/apperror"
	"codetutor-backend/internal/auth/dto"
	"codetutor-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUsecase usecase.UserUsecase
	rateLimiter usecase.RateLimiterUsecase
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUsecase usecase.UserUsecase, rateLimiter usecase.RateLimiterUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		rateLimiter: rateLimiter,
	}
}

// GetMe returns the authenticated user's profile with stats
// GET /api/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("not authenticated"))
		return
	}

	profile, err := h.userUsecase.GetMe(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetRateLimit reports the remaining prompts and reset time
// GET /api/users/rate-limit
func (h *UserHandler) GetRateLimit(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("not authenticated"))
		return
	}

	remaining, resetAt := h.rateLimiter.Status(user)
	c.JSON(http.StatusOK, dto.RateLimitResponse{
		RemainingPrompts: remaining,
		ResetTime:        resetAt,
		MaxPrompts:       h.rateLimiter.Max(),
	})
}

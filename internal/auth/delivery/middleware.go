package delivery

import (
	"codetutor-backend/internal/auth/domain"
	"codetutor-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Authorization header, resolves the token
// identity to a local user account and stores it on the request context.
func AuthMiddleware(authUsecase usecase.AuthUsecase, userUsecase usecase.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authUsecase.VerifyToken(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}

		user, err := userUsecase.GetOrCreateUser(claims.Subject, claims.Email, claims.Username)
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthMiddleware
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

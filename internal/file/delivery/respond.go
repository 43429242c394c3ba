package delivery

import (
	"net/http"

	"codetutor-backend/internal/apperror"

	"github.com/gin-gonic/gin"
)

// respondError writes a classified error as a JSON response. Unclassified
// errors become a generic 500 so storage details never reach the client.
func respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, gin.H{"error": message})
}

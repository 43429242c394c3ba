package delivery

import (
	"fmt"
	"net/http"
	"strconv"

	"codetutor-backend/internal/apperror"
	authdelivery "codetutor-backend/internal/auth/delivery"
	"codetutor-backend/internal/chat/dto"
	"codetutor-backend/internal/chat/usecase"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
	}
}

// StreamChat streams the tutor's reply as server-sent events, one
// "data:" line per delta with a final [DONE] marker
// POST /api/chat/stream
func (h *ChatHandler) StreamChat(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("not authenticated"))
		return
	}

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// SSE headers go out with the first delta. Until then the response is
	// uncommitted and pre-stream failures can still answer with JSON.
	started := false
	writeEvent := func(data string) error {
		if !started {
			started = true
			c.Header("Content-Type", "text/event-stream")
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	}

	err := h.chatUsecase.StreamReply(c.Request.Context(), user, req, writeEvent)
	if err != nil {
		if !started {
			respondError(c, err)
		}
		return
	}

	if err := writeEvent("[DONE]"); err != nil {
		return
	}
}

// GetHistory returns a project's recent messages in chronological order
// GET /api/chat/history/:project_id?limit=50
func (h *ChatHandler) GetHistory(c *gin.Context) {
	userID := c.GetString("userID")
	projectID := c.Param("project_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		respondError(c, apperror.InvalidArgument("limit must be a positive integer"))
		return
	}

	messages, err := h.chatUsecase.GetHistory(userID, projectID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetInitialMessage returns the template's canned greeting
// POST /api/chat/initial-message?project_id=<id>
func (h *ChatHandler) GetInitialMessage(c *gin.Context) {
	userID := c.GetString("userID")

	projectID := c.Query("project_id")
	if projectID == "" {
		respondError(c, apperror.InvalidArgument("project_id query parameter is required"))
		return
	}

	message, err := h.chatUsecase.InitialMessage(userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

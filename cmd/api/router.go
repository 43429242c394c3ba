package api

import (
	"net/http"

	"codetutor-backend/internal/auth/delivery"
	authusecase "codetutor-backend/internal/auth/usecase"
	chatdelivery "codetutor-backend/internal/chat/delivery"
	filedelivery "codetutor-backend/internal/file/delivery"
	projectdelivery "codetutor-backend/internal/project/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authUsecase authusecase.AuthUsecase,
	userUsecase authusecase.UserUsecase,
	userHandler *delivery.UserHandler,
	projectHandler *projectdelivery.ProjectHandler,
	fileHandler *filedelivery.FileHandler,
	chatHandler *chatdelivery.ChatHandler,
) {
	// Health checks (no auth required)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is running!"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := delivery.AuthMiddleware(authUsecase, userUsecase)

	api := r.Group("/api")
	{
		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(authRequired)
		{
			projects.GET("", projectHandler.GetProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProjectByID)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/files", fileHandler.CreateFile)
			projects.GET("/:id/files", fileHandler.GetFiles)
		}

		// File routes (protected)
		files := api.Group("/files")
		files.Use(authRequired)
		{
			files.PUT("/:id", fileHandler.UpdateFile)
			files.PUT("/:id/rename", fileHandler.RenameFile)
			files.DELETE("/:id", fileHandler.DeleteFile)
		}

		// Chat routes (protected)
		chat := api.Group("/chat")
		chat.Use(authRequired)
		{
			chat.POST("/stream", chatHandler.StreamChat)
			chat.GET("/history/:project_id", chatHandler.GetHistory)
			chat.POST("/initial-message", chatHandler.GetInitialMessage)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(authRequired)
		{
			users.GET("/me", userHandler.GetMe)
			users.GET("/rate-limit", userHandler.GetRateLimit)
		}
	}
}

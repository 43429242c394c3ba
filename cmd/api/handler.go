package api

import (
	authdelivery "codetutor-backend/internal/auth/delivery"
	authusecase "codetutor-backend/internal/auth/usecase"
	chatdelivery "codetutor-backend/internal/chat/delivery"
	chatusecase "codetutor-backend/internal/chat/usecase"
	filedelivery "codetutor-backend/internal/file/delivery"
	fileusecase "codetutor-backend/internal/file/usecase"
	projectdelivery "codetutor-backend/internal/project/delivery"
	projectusecase "codetutor-backend/internal/project/usecase"
	"codetutor-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	authUsecase    authusecase.AuthUsecase
	userUsecase    authusecase.UserUsecase
	config         *config.Config
	logger         *zap.Logger
	userHandler    *authdelivery.UserHandler
	projectHandler *projectdelivery.ProjectHandler
	fileHandler    *filedelivery.FileHandler
	chatHandler    *chatdelivery.ChatHandler
}

func NewHandler(
	authUc authusecase.AuthUsecase,
	userUc authusecase.UserUsecase,
	rateLimiter authusecase.RateLimiterUsecase,
	projectUc projectusecase.ProjectUsecase,
	fileUc fileusecase.FileUsecase,
	chatUc chatusecase.ChatUsecase,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authUsecase:    authUc,
		userUsecase:    userUc,
		config:         cfg,
		logger:         logger,
		userHandler:    authdelivery.NewUserHandler(userUc, rateLimiter),
		projectHandler: projectdelivery.NewProjectHandler(projectUc),
		fileHandler:    filedelivery.NewFileHandler(fileUc),
		chatHandler:    chatdelivery.NewChatHandler(chatUc),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.New()
	gin.SetMode(gin.ReleaseMode)

	r.Use(requestLogger(h.logger))
	r.Use(recoveryMiddleware(h.logger))
	r.Use(corsMiddleware(h.config.AllowedOrigins()))

	SetupRoutes(r, h.authUsecase, h.userUsecase, h.userHandler, h.projectHandler, h.fileHandler, h.chatHandler)

	return r.Run(addr)
}

// corsMiddleware allows cross-origin requests from the configured
// frontend origins. Credentials are only granted to known origins.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

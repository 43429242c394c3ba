package main

import (
	"log"

	api "codetutor-backend/cmd/api"
	authdomain "codetutor-backend/internal/auth/domain"
	authrepo "codetutor-backend/internal/auth/repository"
	authusecase "codetutor-backend/internal/auth/usecase"
	chatdomain "codetutor-backend/internal/chat/domain"
	chatrepo "codetutor-backend/internal/chat/repository"
	chatusecase "codetutor-backend/internal/chat/usecase"
	filedomain "codetutor-backend/internal/file/domain"
	filerepo "codetutor-backend/internal/file/repository"
	fileusecase "codetutor-backend/internal/file/usecase"
	projectdomain "codetutor-backend/internal/project/domain"
	projectrepo "codetutor-backend/internal/project/repository"
	projectusecase "codetutor-backend/internal/project/usecase"
	"codetutor-backend/pkg/ai"
	"codetutor-backend/pkg/config"
	"codetutor-backend/pkg/database"
	"codetutor-backend/pkg/logger"
	"codetutor-backend/pkg/prompts"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &projectdomain.Project{}, &filedomain.File{}, &chatdomain.ChatMessage{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authrepo.NewGormUserRepository(db)
	projectRepo := projectrepo.NewGormProjectRepository(db)
	fileRepo := filerepo.NewGormFileRepository(db)
	chatRepo := chatrepo.NewGormChatRepository(db)

	// Clerk signing keys, cached in memory with a TTL
	keySet := authusecase.NewKeySet(cfg.JWKSEndpoint(), cfg.JWKSCacheTTL, cfg.JWKSFetchTimeout)

	// Initialize use cases (dependency injection)
	authUc := authusecase.NewAuthUsecase(keySet, cfg)
	userUc := authusecase.NewUserUsecase(userRepo, projectRepo)
	rateLimiter := authusecase.NewRateLimiter(userRepo, cfg)
	projectUc := projectusecase.NewProjectUsecase(projectRepo, fileRepo, cfg)
	fileUc := fileusecase.NewFileUsecase(fileRepo, projectRepo)

	catalog, err := prompts.Load()
	if err != nil {
		log.Fatal("Failed to load system prompts:", err)
	}

	chatService, err := ai.NewChatService(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
		Logger:        zapLogger,
	})
	if err != nil {
		log.Fatal("Failed to initialize AI service:", err)
	}
	zapLogger.Info("AI service initialized", zap.String("provider", cfg.AIProvider))

	chatUc := chatusecase.NewChatUsecase(chatRepo, projectRepo, fileRepo, rateLimiter, chatService, catalog, zapLogger)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, userUc, rateLimiter, projectUc, fileUc, chatUc, cfg, zapLogger)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

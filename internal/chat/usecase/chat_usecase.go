package usecase

import (
	"context"
	"fmt"
	"strings"

	"codetutor-backend/internal/apperror"
	authdomain "codetutor-backend/internal/auth/domain"
	authusecase "codetutor-backend/internal/auth/usecase"
	"codetutor-backend/internal/chat/domain"
	"codetutor-backend/internal/chat/dto"
	"codetutor-backend/internal/chat/repository"
	filerepo "codetutor-backend/internal/file/repository"
	projectdomain "codetutor-backend/internal/project/domain"
	projectrepo "codetutor-backend/internal/project/repository"
	"codetutor-backend/pkg/ai"
	"codetutor-backend/pkg/prompts"

	"go.uber.org/zap"
)

// historyWindow is how many messages from the start of the conversation
// ride along as model context.
const historyWindow = 20

// maxContextChars caps how much of each file lands in the system prompt.
const maxContextChars = 500

// chatUsecase implements ChatUsecase interface
type chatUsecase struct {
	chatRepo    repository.ChatRepository
	projectRepo projectrepo.ProjectRepository
	fileRepo    filerepo.FileRepository
	rateLimiter authusecase.RateLimiterUsecase
	chatService ai.ChatService
	catalog     *prompts.Catalog
	logger      *zap.Logger
}

// NewChatUsecase creates a new instance of chatUsecase
func NewChatUsecase(
	chatRepo repository.ChatRepository,
	projectRepo projectrepo.ProjectRepository,
	fileRepo filerepo.FileRepository,
	rateLimiter authusecase.RateLimiterUsecase,
	chatService ai.ChatService,
	catalog *prompts.Catalog,
	logger *zap.Logger,
) ChatUsecase {
	return &chatUsecase{
		chatRepo:    chatRepo,
		projectRepo: projectRepo,
		fileRepo:    fileRepo,
		rateLimiter: rateLimiter,
		chatService: chatService,
		catalog:     catalog,
		logger:      logger,
	}
}

// ownedProject loads a project and checks it belongs to userID
func (u *chatUsecase) ownedProject(userID, projectID string) (*projectdomain.Project, error) {
	project, err := u.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFound("Project")
	}
	if project.UserID != userID {
		return nil, apperror.Forbidden("project belongs to another user")
	}
	return project, nil
}

func (u *chatUsecase) StreamReply(ctx context.Context, user *authdomain.User, req dto.ChatRequest, emit func(delta string) error) error {
	project, err := u.ownedProject(user.ID, req.ProjectID)
	if err != nil {
		return err
	}

	allowed, _, err := u.rateLimiter.CheckAndConsume(user)
	if err != nil {
		return err
	}
	if !allowed {
		return apperror.RateLimited(fmt.Sprintf("Rate limit exceeded. You've used all %d prompts this hour.", u.rateLimiter.Max()))
	}

	files, err := u.fileRepo.FindByProjectID(req.ProjectID)
	if err != nil {
		return err
	}

	filesContext := make([]dto.FileContext, 0, len(files))
	for _, f := range files {
		filesContext = append(filesContext, dto.FileContext{
			Name:     f.Name,
			FileType: f.FileType,
			Content:  f.Content,
		})
	}
	if len(filesContext) == 0 {
		filesContext = req.FilesContext
	}

	messages, err := u.chatRepo.FindOldestByProjectID(req.ProjectID, historyWindow)
	if err != nil {
		return err
	}
	history := make([]ai.Message, 0, len(messages))
	for _, m := range messages {
		history = append(history, ai.Message{Role: m.Role, Content: m.Content})
	}

	if err := u.chatRepo.Create(&domain.ChatMessage{
		ProjectID: req.ProjectID,
		Role:      domain.RoleUser,
		Content:   req.Message,
	}); err != nil {
		return err
	}

	system := u.catalog.SystemPrompt(project.TemplateType) + buildFilesContext(filesContext)

	var reply strings.Builder
	err = u.chatService.StreamChat(ctx, ai.ChatRequest{
		System:      system,
		History:     history,
		UserMessage: req.Message,
	}, func(delta string) error {
		reply.WriteString(delta)
		return emit(delta)
	})
	if err != nil {
		return err
	}

	// The reply already reached the client, so a failed save must not
	// turn the request into an error.
	if err := u.chatRepo.Create(&domain.ChatMessage{
		ProjectID: req.ProjectID,
		Role:      domain.RoleAssistant,
		Content:   reply.String(),
	}); err != nil {
		u.logger.Error("failed to persist assistant reply",
			zap.String("project_id", req.ProjectID), zap.Error(err))
	}

	return nil
}

func (u *chatUsecase) GetHistory(userID, projectID string, limit int) ([]*domain.ChatMessage, error) {
	if _, err := u.ownedProject(userID, projectID); err != nil {
		return nil, err
	}

	messages, err := u.chatRepo.FindRecentByProjectID(projectID, limit)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*domain.ChatMessage{}
	}
	return messages, nil
}

func (u *chatUsecase) InitialMessage(userID, projectID string) (string, error) {
	project, err := u.ownedProject(userID, projectID)
	if err != nil {
		return "", err
	}
	return prompts.InitialMessage(project.TemplateType), nil
}

// buildFilesContext renders the project files into the block appended to
// the system prompt. Long files are clipped so one big file cannot crowd
// out the rest of the prompt.
func buildFilesContext(files []dto.FileContext) string {
	if len(files) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nCurrent project files:\n")
	for _, f := range files {
		fmt.Fprintf(&b, "\n--- %s (%s) ---\n", f.Name, f.FileType)
		if len(f.Content) > maxContextChars {
			b.WriteString(f.Content[:maxContextChars])
			b.WriteString("\n... (truncated)")
		} else {
			b.WriteString(f.Content)
		}
	}
	return b.String()
}

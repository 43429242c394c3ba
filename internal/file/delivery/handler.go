package delivery

import (
	"net/http"

	"codetutor-backend/internal/apperror"
	"codetutor-backend/internal/file/dto"
	"codetutor-backend/internal/file/usecase"

	"github.com/gin-gonic/gin"
)

// FileHandler handles file-related HTTP requests
type FileHandler struct {
	fileUsecase usecase.FileUsecase
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(fileUsecase usecase.FileUsecase) *FileHandler {
	return &FileHandler{
		fileUsecase: fileUsecase,
	}
}

// CreateFile adds a new file to a project
// POST /api/projects/:id/files
func (h *FileHandler) CreateFile(c *gin.Context) {
	userID := c.GetString("userID")
	projectID := c.Param("id")

	var req dto.CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := h.fileUsecase.CreateFile(userID, projectID, req.Name, req.FileType, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, file)
}

// GetFiles lists all files in a project
// GET /api/projects/:id/files
func (h *FileHandler) GetFiles(c *gin.Context) {
	userID := c.GetString("userID")
	projectID := c.Param("id")

	files, err := h.fileUsecase.GetProjectFiles(userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, files)
}

// UpdateFile overwrites a file's content (editor autosave)
// PUT /api/files/:id
func (h *FileHandler) UpdateFile(c *gin.Context) {
	userID := c.GetString("userID")
	fileID := c.Param("id")

	var req dto.UpdateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := h.fileUsecase.UpdateFileContent(userID, fileID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, file)
}

// RenameFile changes a file's name
// PUT /api/files/:id/rename?name=NewName
func (h *FileHandler) RenameFile(c *gin.Context) {
	userID := c.GetString("userID")
	fileID := c.Param("id")

	name := c.Query("name")
	if name == "" {
		respondError(c, apperror.InvalidArgument("name query parameter is required"))
		return
	}

	file, err := h.fileUsecase.RenameFile(userID, fileID, name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, file)
}

// DeleteFile removes a file from its project
// DELETE /api/files/:id
func (h *FileHandler) DeleteFile(c *gin.Context) {
	userID := c.GetString("userID")
	fileID := c.Param("id")

	if err := h.fileUsecase.DeleteFile(userID, fileID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

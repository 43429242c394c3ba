package delivery

import (
	"net/http"

	"codetutor-backend/internal/apperror"
	"codetutor-backend/internal/project/dto"
	"codetutor-backend/internal/project/usecase"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectUsecase usecase.ProjectUsecase
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectUsecase usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{
		projectUsecase: projectUsecase,
	}
}

// GetProjects returns all projects for the authenticated user
// GET /api/projects?sort_by=last_accessed
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	userID := c.GetString("userID")
	sortBy := c.DefaultQuery("sort_by", "last_accessed")

	projects, err := h.projectUsecase.GetUserProjects(userID, sortBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject creates a new project from a template
// POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectUsecase.CreateProject(userID, req.Name, req.TemplateType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProjectByID returns a project with all its files
// GET /api/projects/:id
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	userID := c.GetString("userID")
	projectID := c.Param("id")

	project, err := h.projectUsecase.GetProjectByID(userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject renames a project
// PUT /api/projects/:id?name=NewName
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID := c.GetString("userID")
	projectID := c.Param("id")

	name := c.Query("name")
	if name == "" {
		respondError(c, apperror.InvalidArgument("name query parameter is required"))
		return
	}

	project, err := h.projectUsecase.RenameProject(userID, projectID, name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject deletes a project and all its contents
// DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID := c.GetString("userID")
	projectID := c.Param("id")

	if err := h.projectUsecase.DeleteProject(userID, projectID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

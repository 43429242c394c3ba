package dto

// CreateProjectRequest is the payload for creating a new project
type CreateProjectRequest struct {
	Name         string `json:"name" binding:"required"`
	TemplateType string `json:"template_type" binding:"required"`
}

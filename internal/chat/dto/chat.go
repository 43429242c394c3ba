package dto

// FileContext is a client-supplied stand-in for stored project files,
// used when a project has none persisted yet
type FileContext struct {
	Name     string `json:"name"`
	FileType string `json:"file_type"`
	Content  string `json:"content"`
}

// ChatRequest is the payload for streaming a tutor reply
type ChatRequest struct {
	ProjectID    string        `json:"project_id" binding:"required"`
	Message      string        `json:"message" binding:"required"`
	FilesContext []FileContext `json:"files_context"`
}

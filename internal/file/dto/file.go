package dto

// CreateFileRequest is the payload for adding a file to a project
type CreateFileRequest struct {
	Name     string  `json:"name" binding:"required"`
	FileType string  `json:"file_type" binding:"required"`
	Content  *string `json:"content"`
}

// UpdateFileRequest is the autosave payload. A nil content leaves the
// stored content untouched.
type UpdateFileRequest struct {
	Content *string `json:"content"`
}

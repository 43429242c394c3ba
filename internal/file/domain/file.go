package domain

import "time"

// FileType is the editable file kind supported by the workspace editor
type FileType string

const (
	FileTypeHTML FileType = "html"
	FileTypeCSS  FileType = "css"
	FileTypeJS   FileType = "js"
	FileTypeTxt  FileType = "txt"
)

// ValidFileType reports whether t is a supported file type
func ValidFileType(t string) bool {
	switch FileType(t) {
	case FileTypeHTML, FileTypeCSS, FileTypeJS, FileTypeTxt:
		return true
	}
	return false
}

// File represents a single editable file inside a project
type File struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ProjectID string    `json:"project_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"not null"`
	FileType  string    `json:"file_type" gorm:"not null"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package usecase

import (
	"fmt"

	"codetutor-backend/internal/apperror"
	"codetutor-backend/internal/file/domain"
	"codetutor-backend/internal/file/repository"
	projectrepo "codetutor-backend/internal/project/repository"
)

// fileUsecase implements FileUsecase interface
type fileUsecase struct {
	fileRepo    repository.FileRepository
	projectRepo projectrepo.ProjectRepository
}

// NewFileUsecase creates a new instance of fileUsecase
func NewFileUsecase(fileRepo repository.FileRepository, projectRepo projectrepo.ProjectRepository) FileUsecase {
	return &fileUsecase{
		fileRepo:    fileRepo,
		projectRepo: projectRepo,
	}
}

// ownedProject loads a project and checks it belongs to userID
func (u *fileUsecase) ownedProject(userID, projectID string) error {
	project, err := u.projectRepo.FindByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return apperror.NotFound("Project")
	}
	if project.UserID != userID {
		return apperror.Forbidden("project belongs to another user")
	}
	return nil
}

// ownedFile loads a file and checks its project belongs to userID
func (u *fileUsecase) ownedFile(userID, fileID string) (*domain.File, error) {
	file, err := u.fileRepo.FindByID(fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperror.NotFound("File")
	}
	if err := u.ownedProject(userID, file.ProjectID); err != nil {
		return nil, err
	}
	return file, nil
}

func (u *fileUsecase) CreateFile(userID, projectID, name, fileType string, content *string) (*domain.File, error) {
	if !domain.ValidFileType(fileType) {
		return nil, apperror.InvalidArgument(fmt.Sprintf("Invalid file type: %s. Must be one of: html, css, js, txt", fileType))
	}

	if err := u.ownedProject(userID, projectID); err != nil {
		return nil, err
	}

	existing, err := u.fileRepo.FindByProjectIDAndName(projectID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.InvalidArgument(fmt.Sprintf("File with name '%s' already exists in this project", name))
	}

	file := &domain.File{
		ProjectID: projectID,
		Name:      name,
		FileType:  fileType,
	}
	if content != nil {
		file.Content = *content
	}
	if err := u.fileRepo.Create(file); err != nil {
		return nil, err
	}
	return file, nil
}

func (u *fileUsecase) GetProjectFiles(userID, projectID string) ([]*domain.File, error) {
	if err := u.ownedProject(userID, projectID); err != nil {
		return nil, err
	}

	files, err := u.fileRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []*domain.File{}
	}
	return files, nil
}

func (u *fileUsecase) UpdateFileContent(userID, fileID string, content *string) (*domain.File, error) {
	file, err := u.ownedFile(userID, fileID)
	if err != nil {
		return nil, err
	}

	if content != nil {
		file.Content = *content
		if err := u.fileRepo.Update(file); err != nil {
			return nil, err
		}
	}
	return file, nil
}

func (u *fileUsecase) RenameFile(userID, fileID, name string) (*domain.File, error) {
	file, err := u.ownedFile(userID, fileID)
	if err != nil {
		return nil, err
	}

	existing, err := u.fileRepo.FindByProjectIDAndName(file.ProjectID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != file.ID {
		return nil, apperror.InvalidArgument(fmt.Sprintf("File with name '%s' already exists in this project", name))
	}

	file.Name = name
	if err := u.fileRepo.Update(file); err != nil {
		return nil, err
	}
	return file, nil
}

func (u *fileUsecase) DeleteFile(userID, fileID string) error {
	if _, err := u.ownedFile(userID, fileID); err != nil {
		return err
	}
	return u.fileRepo.Delete(fileID)
}

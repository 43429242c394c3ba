package usecase

import (
	"fmt"

	"codetutor-backend/internal/apperror"
	filedomain "codetutor-backend/internal/file/domain"
	filerepo "codetutor-backend/internal/file/repository"
	"codetutor-backend/internal/project/domain"
	"codetutor-backend/internal/project/repository"
	"codetutor-backend/pkg/config"
)

// projectUsecase implements ProjectUsecase interface
type projectUsecase struct {
	projectRepo repository.ProjectRepository
	fileRepo    filerepo.FileRepository
	maxProjects int
}

// NewProjectUsecase creates a new instance of projectUsecase
func NewProjectUsecase(projectRepo repository.ProjectRepository, fileRepo filerepo.FileRepository, cfg *config.Config) ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		fileRepo:    fileRepo,
		maxProjects: cfg.MaxProjectsPerUser,
	}
}

func (u *projectUsecase) CreateProject(userID, name, templateType string) (*domain.Project, error) {
	count, err := u.projectRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}
	if count >= int64(u.maxProjects) {
		return nil, apperror.InvalidArgument(fmt.Sprintf("Maximum number of projects (%d) reached", u.maxProjects))
	}

	if !ValidTemplateType(templateType) {
		return nil, apperror.InvalidArgument(fmt.Sprintf("Invalid template type: %s", templateType))
	}

	project := &domain.Project{
		UserID:       userID,
		Name:         name,
		TemplateType: templateType,
	}
	if err := u.projectRepo.Create(project); err != nil {
		return nil, err
	}

	for _, tf := range templateFiles[templateType] {
		file := &filedomain.File{
			ProjectID: project.ID,
			Name:      tf.Name,
			FileType:  tf.FileType,
			Content:   tf.Content,
		}
		if err := u.fileRepo.Create(file); err != nil {
			return nil, err
		}
	}

	return project, nil
}

func (u *projectUsecase) GetUserProjects(userID, sortBy string) ([]*domain.Project, error) {
	projects, err := u.projectRepo.FindByUserID(userID, sortBy)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []*domain.Project{}
	}
	return projects, nil
}

func (u *projectUsecase) GetProjectByID(userID, projectID string) (*domain.Project, error) {
	project, err := u.projectRepo.FindByIDWithFiles(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFound("Project")
	}
	if project.UserID != userID {
		return nil, apperror.Forbidden("project belongs to another user")
	}

	// Opening a project is what the last_accessed sort is anchored on.
	if err := u.projectRepo.TouchLastAccessed(project.ID); err != nil {
		return nil, err
	}

	return project, nil
}

func (u *projectUsecase) RenameProject(userID, projectID, name string) (*domain.Project, error) {
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

	project.Name = name
	if err := u.projectRepo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) DeleteProject(userID, projectID string) error {
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

	return u.projectRepo.Delete(projectID)
}

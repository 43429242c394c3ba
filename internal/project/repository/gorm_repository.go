package repository

import (
	"errors"
	"time"

	chatdomain "codetutor-backend/internal/chat/domain"
	filedomain "codetutor-backend/internal/file/domain"
	"codetutor-backend/internal/project/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormProjectRepository implements ProjectRepository using GORM
type gormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository
func NewGormProjectRepository(db *gorm.DB) ProjectRepository {
	return &gormProjectRepository{db: db}
}

func (r *gormProjectRepository) Create(project *domain.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	project.LastAccessed = now
	return r.db.Create(project).Error
}

func (r *gormProjectRepository) FindByID(id string) (*domain.Project, error) {
	var project domain.Project
	err := r.db.Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepository) FindByIDWithFiles(id string) (*domain.Project, error) {
	var project domain.Project
	err := r.db.Preload("Files").Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepository) FindByUserID(userID, sortBy string) ([]*domain.Project, error) {
	var projects []*domain.Project

	order := "last_accessed DESC"
	if sortBy == "created_at" {
		order = "created_at DESC"
	}

	err := r.db.Where("user_id = ?", userID).Order(order).Find(&projects).Error
	return projects, err
}

func (r *gormProjectRepository) Update(project *domain.Project) error {
	project.UpdatedAt = time.Now()
	return r.db.Save(project).Error
}

func (r *gormProjectRepository) TouchLastAccessed(id string) error {
	return r.db.Model(&domain.Project{}).Where("id = ?", id).
		Update("last_accessed", time.Now()).Error
}

// Delete removes the project and everything hanging off it in one
// transaction, standing in for a database-level cascade.
func (r *gormProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&chatdomain.ChatMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&filedomain.File{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Project{}, "id = ?", id).Error
	})
}

func (r *gormProjectRepository) CountByUserID(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Project{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

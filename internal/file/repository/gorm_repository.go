package repository

import (
	"errors"
	"time"

	"codetutor-backend/internal/file/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormFileRepository implements FileRepository using GORM
type gormFileRepository struct {
	db *gorm.DB
}

// NewGormFileRepository creates a new GORM-based FileRepository
func NewGormFileRepository(db *gorm.DB) FileRepository {
	return &gormFileRepository{db: db}
}

func (r *gormFileRepository) Create(file *domain.File) error {
	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	now := time.Now()
	file.CreatedAt = now
	file.UpdatedAt = now
	return r.db.Create(file).Error
}

func (r *gormFileRepository) FindByID(id string) (*domain.File, error) {
	var file domain.File
	err := r.db.Where("id = ?", id).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (r *gormFileRepository) FindByProjectID(projectID string) ([]*domain.File, error) {
	var files []*domain.File
	err := r.db.Where("project_id = ?", projectID).Find(&files).Error
	return files, err
}

func (r *gormFileRepository) FindByProjectIDAndName(projectID, name string) (*domain.File, error) {
	var file domain.File
	err := r.db.Where("project_id = ? AND name = ?", projectID, name).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (r *gormFileRepository) Update(file *domain.File) error {
	file.UpdatedAt = time.Now()
	return r.db.Save(file).Error
}

func (r *gormFileRepository) Delete(id string) error {
	return r.db.Delete(&domain.File{}, "id = ?", id).Error
}

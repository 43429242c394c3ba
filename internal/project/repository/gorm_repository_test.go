package repository

import (
	"testing"
	"time"

	chatdomain "codetutor-backend/internal/chat/domain"
	filedomain "codetutor-backend/internal/file/domain"
	"codetutor-backend/internal/project/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Project{}, &filedomain.File{}, &chatdomain.ChatMessage{}))
	return db
}

func createProject(t *testing.T, repo ProjectRepository, userID, name string) *domain.Project {
	t.Helper()
	project := &domain.Project{UserID: userID, Name: name, TemplateType: "portfolio_website"}
	require.NoError(t, repo.Create(project))
	return project
}

// setColumn backdates a timestamp column so ordering tests are deterministic.
func setColumn(t *testing.T, db *gorm.DB, id, column string, v time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&domain.Project{}).Where("id = ?", id).Update(column, v).Error)
}

func TestProjectRepository_Create(t *testing.T) {
	repo := NewGormProjectRepository(newTestDB(t))

	project := createProject(t, repo, "u1", "My Site")
	assert.NotEmpty(t, project.ID)
	assert.False(t, project.CreatedAt.IsZero())
	assert.False(t, project.LastAccessed.IsZero(), "a new project counts as just accessed")
}

func TestProjectRepository_FindByID(t *testing.T) {
	repo := NewGormProjectRepository(newTestDB(t))
	created := createProject(t, repo, "u1", "My Site")

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "My Site", found.Name)

	missing, err := repo.FindByID("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProjectRepository_FindByIDWithFiles(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProjectRepository(db)
	project := createProject(t, repo, "u1", "My Site")

	require.NoError(t, db.Create(&filedomain.File{
		ID: "f1", ProjectID: project.ID, Name: "index.html", FileType: "html",
	}).Error)
	require.NoError(t, db.Create(&filedomain.File{
		ID: "f2", ProjectID: project.ID, Name: "style.css", FileType: "css",
	}).Error)

	found, err := repo.FindByIDWithFiles(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Len(t, found.Files, 2)
}

func TestProjectRepository_FindByUserID_SortOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProjectRepository(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	oldest := createProject(t, repo, "u1", "oldest")
	middle := createProject(t, repo, "u1", "middle")
	newest := createProject(t, repo, "u1", "newest")
	createProject(t, repo, "someone-else", "not mine")

	for i, p := range []*domain.Project{oldest, middle, newest} {
		setColumn(t, db, p.ID, "created_at", base.Add(time.Duration(i)*time.Minute))
	}
	// The oldest project was opened most recently.
	setColumn(t, db, oldest.ID, "last_accessed", base.Add(time.Hour))
	setColumn(t, db, middle.ID, "last_accessed", base)
	setColumn(t, db, newest.ID, "last_accessed", base.Add(30*time.Minute))

	byAccess, err := repo.FindByUserID("u1", "last_accessed")
	require.NoError(t, err)
	require.Len(t, byAccess, 3)
	assert.Equal(t, []string{"oldest", "newest", "middle"},
		[]string{byAccess[0].Name, byAccess[1].Name, byAccess[2].Name})

	byCreation, err := repo.FindByUserID("u1", "created_at")
	require.NoError(t, err)
	require.Len(t, byCreation, 3)
	assert.Equal(t, []string{"newest", "middle", "oldest"},
		[]string{byCreation[0].Name, byCreation[1].Name, byCreation[2].Name})
}

func TestProjectRepository_TouchLastAccessed(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProjectRepository(db)
	project := createProject(t, repo, "u1", "My Site")

	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	setColumn(t, db, project.ID, "last_accessed", stale)

	require.NoError(t, repo.TouchLastAccessed(project.ID))

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.True(t, found.LastAccessed.After(stale))
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProjectRepository(db)

	doomed := createProject(t, repo, "u1", "doomed")
	kept := createProject(t, repo, "u1", "kept")

	for _, projectID := range []string{doomed.ID, kept.ID} {
		require.NoError(t, db.Create(&filedomain.File{
			ID: "file-" + projectID, ProjectID: projectID, Name: "index.html", FileType: "html",
		}).Error)
		require.NoError(t, db.Create(&chatdomain.ChatMessage{
			ID: "msg-" + projectID, ProjectID: projectID, Role: "user", Content: "hi",
		}).Error)
	}

	require.NoError(t, repo.Delete(doomed.ID))

	found, err := repo.FindByID(doomed.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	var fileCount, messageCount int64
	require.NoError(t, db.Model(&filedomain.File{}).Where("project_id = ?", doomed.ID).Count(&fileCount).Error)
	require.NoError(t, db.Model(&chatdomain.ChatMessage{}).Where("project_id = ?", doomed.ID).Count(&messageCount).Error)
	assert.Zero(t, fileCount)
	assert.Zero(t, messageCount)

	// The sibling project keeps its rows.
	require.NoError(t, db.Model(&filedomain.File{}).Where("project_id = ?", kept.ID).Count(&fileCount).Error)
	assert.Equal(t, int64(1), fileCount)
}

func TestProjectRepository_CountByUserID(t *testing.T) {
	repo := NewGormProjectRepository(newTestDB(t))

	createProject(t, repo, "u1", "one")
	createProject(t, repo, "u1", "two")
	createProject(t, repo, "u2", "other")

	count, err := repo.CountByUserID("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByUserID("nobody")
	require.NoError(t, err)
	assert.Zero(t, count)
}

package gorm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/logger"
	"sharexconnect/internal/storage"
)

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository создаёт новый репозиторий проектов
func NewProjectRepository(db *gorm.DB) storage.ProjectRepository {
	return &projectRepository{db: db}
}

// Create создаёт новый проект
func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	dbProject := &Project{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Category:    project.Category,
		OwnerID:     project.OwnerID,
		Visibility:  string(project.Visibility),
		Status:      string(project.Status),
	}

	if err := r.db.WithContext(ctx).Create(dbProject).Error; err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return storage.ErrInvalidReference
		}
		return err
	}

	project.CreatedAt = dbProject.CreatedAt
	project.UpdatedAt = dbProject.UpdatedAt
	return nil
}

// GetByID получает проект по ID
func (r *projectRepository) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	var dbProject Project
	if err := r.db.WithContext(ctx).First(&dbProject, "id = ?", projectID).Error; err != nil {
		return nil, notFound(err)
	}
	return dbProject.toDomain(), nil
}

// Delete удаляет проект вместе со всеми зависимыми записями
func (r *projectRepository) Delete(ctx context.Context, projectID string) error {
	requestID := logger.GetRequestID(ctx)
	db := r.db.WithContext(ctx)

	// Зависимые таблицы чистим явно: в sqlite внешних ключей нет
	prIDs := db.Model(&PullRequest{}).Select("id").Where("project_id = ?", projectID)
	steps := []func() error{
		func() error { return db.Where("pull_request_id IN (?)", prIDs).Delete(&PullRequestFile{}).Error },
		func() error { return db.Where("project_id = ?", projectID).Delete(&PullRequest{}).Error },
		func() error { return db.Where("project_id = ?", projectID).Delete(&ChangeRequest{}).Error },
		func() error { return db.Where("project_id = ?", projectID).Delete(&RepositoryItem{}).Error },
		func() error { return db.Where("project_id = ?", projectID).Delete(&ProjectFile{}).Error },
		func() error { return db.Where("project_id = ?", projectID).Delete(&CollaborationRequest{}).Error },
		func() error { return db.Where("project_id = ?", projectID).Delete(&ProjectCollaborator{}).Error },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			log.Error().
				Err(err).
				Str("request_id", requestID).
				Str("layer", "storage").
				Str("project_id", projectID).
				Msg("error deleting project dependents")
			return err
		}
	}

	result := db.Where("id = ?", projectID).Delete(&Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("project_id", projectID).
		Msg("successfully deleted project")

	return nil
}

// UpdateStatus меняет статус проекта, если текущий входит в from
func (r *projectRepository) UpdateStatus(ctx context.Context, projectID string, from []domain.ProjectStatus, to domain.ProjectStatus) error {
	result := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("id = ? AND status IN ?", projectID, from).
		Update("status", string(to))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrConflict
	}
	return nil
}

// Touch обновляет updated_at проекта
func (r *projectRepository) Touch(ctx context.Context, projectID string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("id = ?", projectID).
		UpdateColumn("updated_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

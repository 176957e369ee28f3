package gorm

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/storage"
)

type collaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository создаёт новый репозиторий участников проекта
func NewCollaboratorRepository(db *gorm.DB) storage.CollaboratorRepository {
	return &collaboratorRepository{db: db}
}

// collaboratorRow - результат join участника с пользователем
type collaboratorRow struct {
	ProjectID string
	UserID    string
	Username  string
	FullName  string
	Role      string
	AddedAt   time.Time
}

func (c collaboratorRow) toDomain() domain.Collaborator {
	return domain.Collaborator{
		ProjectID: c.ProjectID,
		UserID:    c.UserID,
		Username:  c.Username,
		FullName:  c.FullName,
		Role:      domain.Role(c.Role),
		AddedAt:   c.AddedAt,
	}
}

// Add добавляет участника; если пара уже есть - ничего не делает
func (r *collaboratorRepository) Add(ctx context.Context, projectID, userID string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ProjectCollaborator{ProjectID: projectID, UserID: userID}).Error
}

// Remove удаляет участника проекта
func (r *collaboratorRepository) Remove(ctx context.Context, projectID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&ProjectCollaborator{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// IsCollaborator проверяет участие пользователя в проекте
func (r *collaboratorRepository) IsCollaborator(ctx context.Context, projectID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProjectCollaborator{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *collaboratorRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("project_collaborators AS pc").
		Select("pc.project_id, pc.user_id, u.username, u.full_name, u.role, pc.added_at").
		Joins("JOIN users u ON u.id = pc.user_id")
}

// Get возвращает участника с данными пользователя
func (r *collaboratorRepository) Get(ctx context.Context, projectID, userID string) (*domain.Collaborator, error) {
	var rows []collaboratorRow
	err := r.baseQuery(ctx).
		Where("pc.project_id = ? AND pc.user_id = ?", projectID, userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, storage.ErrNotFound
	}
	c := rows[0].toDomain()
	return &c, nil
}

// ListByProject возвращает участников проекта в порядке добавления
func (r *collaboratorRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Collaborator, error) {
	var rows []collaboratorRow
	err := r.baseQuery(ctx).
		Where("pc.project_id = ?", projectID).
		Order("pc.added_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	collaborators := make([]domain.Collaborator, len(rows))
	for i, row := range rows {
		collaborators[i] = row.toDomain()
	}
	return collaborators, nil
}

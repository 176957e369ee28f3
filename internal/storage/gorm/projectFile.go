package gorm

import (
	"context"

	"gorm.io/gorm"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/storage"
)

type projectFileRepository struct {
	db *gorm.DB
}

// NewProjectFileRepository создаёт новый репозиторий файлов проекта
func NewProjectFileRepository(db *gorm.DB) storage.ProjectFileRepository {
	return &projectFileRepository{db: db}
}

// Create сохраняет постоянный файл проекта
func (r *projectFileRepository) Create(ctx context.Context, file *domain.ProjectFile) error {
	dbFile := &ProjectFile{
		ID:         file.ID,
		ProjectID:  file.ProjectID,
		FileName:   file.FileName,
		FilePath:   file.FilePath,
		FileType:   file.FileType,
		FileSize:   file.FileSize,
		Content:    file.Content,
		IsArchive:  file.IsArchive,
		UploadedBy: file.UploadedBy,
	}

	if err := r.db.WithContext(ctx).Create(dbFile).Error; err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return storage.ErrInvalidReference
		}
		return err
	}

	file.CreatedAt = dbFile.CreatedAt
	return nil
}

// GetByID получает файл проекта вместе с содержимым
func (r *projectFileRepository) GetByID(ctx context.Context, projectID, fileID string) (*domain.ProjectFile, error) {
	var dbFile ProjectFile
	err := r.db.WithContext(ctx).
		First(&dbFile, "id = ? AND project_id = ?", fileID, projectID).Error
	if err != nil {
		return nil, notFound(err)
	}
	file := dbFile.toDomain()
	return &file, nil
}

// ListByProject возвращает метаданные файлов проекта без содержимого
func (r *projectFileRepository) ListByProject(ctx context.Context, projectID string) ([]domain.ProjectFile, error) {
	var dbFiles []ProjectFile
	err := r.db.WithContext(ctx).
		Omit("content").
		Where("project_id = ?", projectID).
		Order("created_at ASC, id ASC").
		Find(&dbFiles).Error
	if err != nil {
		return nil, err
	}

	files := make([]domain.ProjectFile, len(dbFiles))
	for i := range dbFiles {
		files[i] = dbFiles[i].toDomain()
	}
	return files, nil
}

package gorm

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/logger"
	"sharexconnect/internal/storage"
)

type repositoryItemRepository struct {
	db *gorm.DB
}

// NewRepositoryItemRepository создаёт новый репозиторий дерева файлов проекта
func NewRepositoryItemRepository(db *gorm.DB) storage.RepositoryItemRepository {
	return &repositoryItemRepository{db: db}
}

// Create создаёт новый файл или папку
func (r *repositoryItemRepository) Create(ctx context.Context, item *domain.RepositoryItem) error {
	requestID := logger.GetRequestID(ctx)

	dbItem := &RepositoryItem{
		ID:             item.ID,
		ProjectID:      item.ProjectID,
		Path:           item.Path,
		ParentID:       item.ParentID,
		Name:           item.Name,
		Type:           string(item.Type),
		Content:        item.Content,
		Size:           item.Size,
		Language:       item.Language,
		LastModifiedBy: item.LastModifiedBy,
	}

	if err := r.db.WithContext(ctx).Create(dbItem).Error; err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Str("project_id", item.ProjectID).
				Str("path", item.Path).
				Msg("repository item path already exists")
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("project_id", item.ProjectID).
			Msg("error creating repository item")
		return err
	}

	item.CreatedAt = dbItem.CreatedAt
	item.UpdatedAt = dbItem.UpdatedAt
	return nil
}

// GetByID получает узел по ID в рамках проекта
func (r *repositoryItemRepository) GetByID(ctx context.Context, projectID, itemID string) (*domain.RepositoryItem, error) {
	var dbItem RepositoryItem
	err := r.db.WithContext(ctx).
		First(&dbItem, "id = ? AND project_id = ?", itemID, projectID).Error
	if err != nil {
		return nil, notFound(err)
	}
	item := dbItem.toDomain()
	return &item, nil
}

// ListByProject возвращает все узлы проекта, упорядоченные по пути
func (r *repositoryItemRepository) ListByProject(ctx context.Context, projectID string) ([]domain.RepositoryItem, error) {
	var dbItems []RepositoryItem
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("path ASC").
		Find(&dbItems).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.RepositoryItem, len(dbItems))
	for i := range dbItems {
		items[i] = dbItems[i].toDomain()
	}
	return items, nil
}

// UpdateContent перезаписывает содержимое, размер, язык и автора изменения
func (r *repositoryItemRepository) UpdateContent(ctx context.Context, item *domain.RepositoryItem) error {
	result := r.db.WithContext(ctx).
		Model(&RepositoryItem{}).
		Where("id = ? AND project_id = ?", item.ID, item.ProjectID).
		Updates(map[string]interface{}{
			"content":          item.Content,
			"size":             item.Size,
			"language":         item.Language,
			"last_modified_by": item.LastModifiedBy,
			"updated_at":       item.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteSubtree удаляет узел и всех его потомков.
// Потомки собираются обходом в ширину по parent_id, затем удаляются одним запросом.
func (r *repositoryItemRepository) DeleteSubtree(ctx context.Context, projectID, itemID string) (int, error) {
	requestID := logger.GetRequestID(ctx)
	db := r.db.WithContext(ctx)

	var root RepositoryItem
	if err := db.Select("id").First(&root, "id = ? AND project_id = ?", itemID, projectID).Error; err != nil {
		return 0, notFound(err)
	}

	ids := []string{root.ID}
	frontier := []string{root.ID}
	for len(frontier) > 0 {
		var children []string
		err := db.Model(&RepositoryItem{}).
			Where("project_id = ? AND parent_id IN ?", projectID, frontier).
			Pluck("id", &children).Error
		if err != nil {
			return 0, err
		}
		ids = append(ids, children...)
		frontier = children
	}

	// В postgres это делает ON DELETE SET NULL, в sqlite внешних ключей нет
	err := db.Model(&ChangeRequest{}).
		Where("project_id = ? AND file_id IN ?", projectID, ids).
		Update("file_id", nil).Error
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("item_id", itemID).
			Msg("error detaching change requests from repository subtree")
		return 0, err
	}

	result := db.Where("project_id = ? AND id IN ?", projectID, ids).Delete(&RepositoryItem{})
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("item_id", itemID).
			Msg("error deleting repository subtree")
		return 0, result.Error
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("item_id", itemID).
		Int64("deleted", result.RowsAffected).
		Msg("successfully deleted repository subtree")

	return int(result.RowsAffected), nil
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/logger"
	"sharexconnect/internal/storage"
)

// ListRepositoryItems возвращает дерево файлов проекта, упорядоченное по пути
func (s *Service) ListRepositoryItems(outerCtx context.Context, projectID, callerID string) ([]domain.RepositoryItem, error) {
	const op = "service.ListRepositoryItems"
	var items []domain.RepositoryItem

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if err := access.requireView(); err != nil {
			return err
		}

		items, err = tx.RepositoryItemRepo().ListByProject(ctx, projectID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return items, nil
}

// GetRepositoryItem возвращает один узел дерева
func (s *Service) GetRepositoryItem(outerCtx context.Context, projectID, itemID, callerID string) (*domain.RepositoryItem, error) {
	const op = "service.GetRepositoryItem"
	var item *domain.RepositoryItem

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if err := access.requireView(); err != nil {
			return err
		}

		item, err = tx.RepositoryItemRepo().GetByID(ctx, projectID, itemID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return item, nil
}

// validateItemName отсекает пустые имена и имена с разделителем пути
func validateItemName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return domain.NewValidationError("name is required",
			domain.FieldError{Field: "name", Message: "is required"})
	case strings.Contains(name, "/"), name == ".", name == "..":
		return domain.NewValidationError("invalid item name",
			domain.FieldError{Field: "name", Message: "must not contain '/' or be '.' or '..'"})
	}
	return nil
}

// CreateRepositoryItem создаёт файл или папку в дереве проекта
func (s *Service) CreateRepositoryItem(outerCtx context.Context, input *domain.CreateRepositoryItemInput) (*domain.RepositoryItem, error) {
	const op = "service.CreateRepositoryItem"
	requestID := logger.GetRequestID(outerCtx)
	defer observeDuration("create_repository_item", time.Now())

	if err := validateItemName(input.Name); err != nil {
		return nil, err
	}
	if input.Type != domain.RepositoryItemFile && input.Type != domain.RepositoryItemFolder {
		return nil, domain.NewValidationError("invalid item type",
			domain.FieldError{Field: "type", Message: "must be FILE or FOLDER"})
	}
	if input.Type == domain.RepositoryItemFolder && input.Content != "" {
		return nil, domain.NewValidationError("folders cannot have content",
			domain.FieldError{Field: "content", Message: "must be empty for folders"})
	}

	item := &domain.RepositoryItem{
		ID:             uuid.NewString(),
		ProjectID:      input.ProjectID,
		ParentID:       input.ParentID,
		Name:           input.Name,
		Type:           input.Type,
		Content:        input.Content,
		Size:           int64(len(input.Content)),
		Language:       input.Language,
		LastModifiedBy: input.CallerID,
	}
	if item.Type == domain.RepositoryItemFile && item.Language == "" {
		item.Language = domain.DetectLanguage(item.Name)
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, input.ProjectID, input.CallerID)
		if err != nil {
			return err
		}
		if err := access.requireWrite(); err != nil {
			return err
		}

		parentPath := ""
		if input.ParentID != nil {
			parent, err := tx.RepositoryItemRepo().GetByID(ctx, input.ProjectID, *input.ParentID)
			if err != nil {
				return err
			}
			if parent.Type != domain.RepositoryItemFolder {
				return domain.NewValidationError("parent must be a folder",
					domain.FieldError{Field: "parentId", Message: "must reference a folder"})
			}
			parentPath = parent.Path
		}
		item.Path = domain.JoinItemPath(parentPath, item.Name)

		return tx.RepositoryItemRepo().Create(ctx, item)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("project_id", item.ProjectID).
		Str("path", item.Path).
		Str("type", string(item.Type)).
		Msg("successfully created repository item")

	return item, nil
}

// UpdateRepositoryItem полностью заменяет содержимое файла
func (s *Service) UpdateRepositoryItem(outerCtx context.Context, input *domain.UpdateRepositoryItemInput) (*domain.RepositoryItem, error) {
	const op = "service.UpdateRepositoryItem"
	var item *domain.RepositoryItem

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, input.ProjectID, input.CallerID)
		if err != nil {
			return err
		}
		if err := access.requireWrite(); err != nil {
			return err
		}

		item, err = tx.RepositoryItemRepo().GetByID(ctx, input.ProjectID, input.ItemID)
		if err != nil {
			return err
		}
		if item.Type == domain.RepositoryItemFolder {
			return domain.NewValidationError("folders have no content to update")
		}

		item.Content = input.Content
		item.Size = int64(len(input.Content))
		if input.Language != "" {
			item.Language = input.Language
		} else if item.Language == "" {
			item.Language = domain.DetectLanguage(item.Name)
		}
		item.LastModifiedBy = input.CallerID
		item.UpdatedAt = now()

		return tx.RepositoryItemRepo().UpdateContent(ctx, item)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return item, nil
}

// DeleteRepositoryItem удаляет узел со всем поддеревом
func (s *Service) DeleteRepositoryItem(outerCtx context.Context, projectID, itemID, callerID string) (int, error) {
	const op = "service.DeleteRepositoryItem"
	requestID := logger.GetRequestID(outerCtx)
	var deleted int

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if err := access.requireWrite(); err != nil {
			return err
		}

		deleted, err = tx.RepositoryItemRepo().DeleteSubtree(ctx, projectID, itemID)
		return err
	})
	if err != nil {
		return 0, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("project_id", projectID).
		Str("item_id", itemID).
		Int("deleted", deleted).
		Msg("successfully deleted repository item")

	return deleted, nil
}

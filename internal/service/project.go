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

// CreateProject создаёт проект в статусе DRAFT
func (s *Service) CreateProject(outerCtx context.Context, input *domain.CreateProjectInput) (*domain.Project, error) {
	const op = "service.CreateProject"
	requestID := logger.GetRequestID(outerCtx)
	defer observeDuration("create_project", time.Now())

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("title is required",
			domain.FieldError{Field: "title", Message: "is required"})
	}

	visibility := input.Visibility
	switch visibility {
	case "":
		visibility = domain.VisibilityPrivate
	case domain.VisibilityPrivate, domain.VisibilityInstitution, domain.VisibilityPublic:
	default:
		return nil, domain.NewValidationError("invalid visibility",
			domain.FieldError{Field: "visibility", Message: "must be one of PRIVATE, INSTITUTION, PUBLIC"})
	}

	project := &domain.Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: input.Description,
		Category:    input.Category,
		OwnerID:     input.OwnerID,
		Visibility:  visibility,
		Status:      domain.ProjectStatusDraft,
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		owner, err := tx.UserRepo().GetByID(ctx, input.OwnerID)
		if err != nil {
			return err
		}
		if owner.Role == domain.RoleGuest {
			return domain.NewPermissionDenied("guests cannot create projects")
		}
		return tx.ProjectRepo().Create(ctx, project)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("project_id", project.ID).
		Str("owner_id", project.OwnerID).
		Msg("successfully created project")

	return project, nil
}

// GetProject возвращает проект, если вызывающий может его видеть
func (s *Service) GetProject(outerCtx context.Context, projectID, callerID string) (*domain.Project, error) {
	const op = "service.GetProject"
	var project *domain.Project

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if err := access.requireView(); err != nil {
			return err
		}
		project = access.project
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return project, nil
}

// DeleteProject удаляет проект со всеми зависимыми данными
func (s *Service) DeleteProject(outerCtx context.Context, projectID, callerID string) error {
	const op = "service.DeleteProject"
	requestID := logger.GetRequestID(outerCtx)
	defer observeDuration("delete_project", time.Now())

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if err := access.requireOwner(); err != nil {
			return err
		}
		return tx.ProjectRepo().Delete(ctx, projectID)
	})
	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("project_id", projectID).
		Msg("successfully deleted project")

	return nil
}

// SubmitProject переводит проект из DRAFT в SUBMITTED
func (s *Service) SubmitProject(outerCtx context.Context, projectID, callerID string) (*domain.Project, error) {
	const op = "service.SubmitProject"
	var project *domain.Project

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if err := access.requireOwner(); err != nil {
			return err
		}

		if err := tx.ProjectRepo().UpdateStatus(ctx, projectID,
			[]domain.ProjectStatus{domain.ProjectStatusDraft}, domain.ProjectStatusSubmitted); err != nil {
			return err
		}

		project, err = tx.ProjectRepo().GetByID(ctx, projectID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return project, nil
}

// ReviewProject выполняет рецензию преподавателем.
// Промежуточная рецензия: SUBMITTED -> UNDER_REVIEW.
// Финальная: SUBMITTED/UNDER_REVIEW -> APPROVED, других путей в APPROVED нет.
func (s *Service) ReviewProject(outerCtx context.Context, input *domain.ReviewProjectInput) (*domain.Project, error) {
	const op = "service.ReviewProject"
	requestID := logger.GetRequestID(outerCtx)
	var project *domain.Project

	from := []domain.ProjectStatus{domain.ProjectStatusSubmitted}
	to := domain.ProjectStatusUnderReview
	if input.Final {
		from = append(from, domain.ProjectStatusUnderReview)
		to = domain.ProjectStatusApproved
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		reviewer, err := tx.UserRepo().GetByID(ctx, input.ReviewerID)
		if err != nil {
			return err
		}
		if reviewer.Role != domain.RoleFaculty {
			return domain.ErrFacultyOnly
		}

		if _, err := tx.ProjectRepo().GetByID(ctx, input.ProjectID); err != nil {
			return err
		}

		if err := tx.ProjectRepo().UpdateStatus(ctx, input.ProjectID, from, to); err != nil {
			return err
		}

		project, err = tx.ProjectRepo().GetByID(ctx, input.ProjectID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("project_id", project.ID).
		Str("status", string(project.Status)).
		Msg("project reviewed")

	return project, nil
}

// UploadProjectFile сохраняет файл владельца напрямую в постоянное хранилище
func (s *Service) UploadProjectFile(outerCtx context.Context, input *domain.UploadProjectFileInput) (*domain.ProjectFile, error) {
	const op = "service.UploadProjectFile"
	requestID := logger.GetRequestID(outerCtx)
	defer observeDuration("upload_project_file", time.Now())

	if err := validateUpload("file", input.File); err != nil {
		return nil, err
	}

	fileType := detectFileType(input.File.FileType, input.File.Content)
	file := &domain.ProjectFile{
		ProjectID:  input.ProjectID,
		FileName:   input.File.FileName,
		FilePath:   input.File.FilePath,
		FileType:   fileType,
		FileSize:   int64(len(input.File.Content)),
		Content:    input.File.Content,
		IsArchive:  isArchive(input.File.FileName, fileType),
		UploadedBy: input.UploaderID,
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, input.ProjectID, input.UploaderID)
		if err != nil {
			return err
		}
		if err := access.requireOwner(); err != nil {
			return err
		}

		if err := persistProjectFile(ctx, tx, file); err != nil {
			return err
		}
		return tx.ProjectRepo().Touch(ctx, input.ProjectID, now())
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("project_id", input.ProjectID).
		Str("file_id", file.ID).
		Int64("file_size", file.FileSize).
		Msg("successfully uploaded project file")

	return file, nil
}

// GetProjectFiles возвращает метаданные файлов проекта
func (s *Service) GetProjectFiles(outerCtx context.Context, projectID, callerID string) ([]domain.ProjectFile, error) {
	const op = "service.GetProjectFiles"
	var files []domain.ProjectFile

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if err := access.requireView(); err != nil {
			return err
		}

		files, err = tx.ProjectFileRepo().ListByProject(ctx, projectID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return files, nil
}

// GetProjectFile возвращает файл проекта с содержимым для скачивания
func (s *Service) GetProjectFile(outerCtx context.Context, projectID, fileID, callerID string) (*domain.ProjectFile, error) {
	const op = "service.GetProjectFile"
	var file *domain.ProjectFile

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if err := access.requireView(); err != nil {
			return err
		}

		file, err = tx.ProjectFileRepo().GetByID(ctx, projectID, fileID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return file, nil
}

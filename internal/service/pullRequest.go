package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/logger"
	"sharexconnect/internal/metrics"
	"sharexconnect/internal/storage"
)

// CreatePullRequest создаёт PR участника и сохраняет приложенные файлы во временное хранилище
func (s *Service) CreatePullRequest(outerCtx context.Context, input *domain.CreatePullRequestInput) (*domain.PullRequest, error) {
	const op = "service.CreatePullRequest"
	requestID := logger.GetRequestID(outerCtx)
	defer observeDuration("create_pull_request", time.Now())

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("project_id", input.ProjectID).
		Str("author_id", input.AuthorID).
		Int("files_count", len(input.Files)).
		Msg("creating pull request with transaction")

	var pr *domain.PullRequest

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		project, err := tx.ProjectRepo().GetByID(ctx, input.ProjectID)
		if err != nil {
			return err
		}

		// Проверка владельца идёт первой: владелец загружает файлы напрямую
		if project.OwnerID == input.AuthorID {
			return domain.ErrOwnerCannotOpenPullRequest
		}

		isCollaborator, err := tx.CollaboratorRepo().IsCollaborator(ctx, input.ProjectID, input.AuthorID)
		if err != nil {
			return err
		}
		if !isCollaborator {
			return domain.ErrNotCollaborator
		}

		if strings.TrimSpace(input.Title) == "" {
			return domain.NewValidationError("title is required",
				domain.FieldError{Field: "title", Message: "is required"})
		}
		for _, f := range input.Files {
			if err := validateUpload("files", f); err != nil {
				return err
			}
		}

		id := uuid.NewString()
		branchName := strings.TrimSpace(input.BranchName)
		if branchName == "" {
			branchName = "feature/" + id[:8]
		}

		filesChanged := input.FilesChanged
		if len(filesChanged) == 0 {
			filesChanged = make([]string, 0, len(input.Files))
			for _, f := range input.Files {
				filesChanged = append(filesChanged, f.FileName)
			}
		}

		status := domain.PullRequestStatusOpen
		if input.Draft {
			status = domain.PullRequestStatusDraft
		}

		pr = &domain.PullRequest{
			ID:             id,
			ProjectID:      input.ProjectID,
			AuthorID:       input.AuthorID,
			Title:          strings.TrimSpace(input.Title),
			Description:    input.Description,
			BranchName:     branchName,
			FilesChanged:   filesChanged,
			ChangesPreview: input.ChangesPreview,
			Status:         status,
		}

		if err := tx.PullRequestRepo().Create(ctx, pr); err != nil {
			return err
		}

		pr.Files = make([]domain.PullRequestFile, 0, len(input.Files))
		for _, f := range input.Files {
			staged := stagedFile(pr.ID, f)
			if err := tx.PullRequestRepo().AddFile(ctx, staged); err != nil {
				return err
			}
			metrics.PRStagedFileBytes.Observe(float64(staged.FileSize))

			// Содержимое в ответ не возвращаем
			staged.Content = nil
			pr.Files = append(pr.Files, *staged)
		}

		log.Info().
			Str("request_id", requestID).
			Str("layer", "service").
			Str("pull_request_id", pr.ID).
			Int("staged_files", len(pr.Files)).
			Msg("successfully created pull request with staged files in transaction")

		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.PRCreatedTotal.Inc()

	return pr, nil
}

// UpdatePullRequestStatus меняет статус PR по решению владельца проекта.
// Смена статуса выполняется условным UPDATE по допустимым исходным статусам.
// Для MERGED в той же транзакции выполняется перенос файлов; любая ошибка
// переноса откатывает и смену статуса.
func (s *Service) UpdatePullRequestStatus(outerCtx context.Context, input *domain.UpdatePullRequestStatusInput) (*domain.PullRequest, error) {
	const op = "service.UpdatePullRequestStatus"
	requestID := logger.GetRequestID(outerCtx)
	defer observeDuration("update_pull_request_status", time.Now())

	switch input.Status {
	case domain.PullRequestStatusApproved, domain.PullRequestStatusRejected, domain.PullRequestStatusMerged:
	default:
		return nil, domain.NewValidationError("invalid status",
			domain.FieldError{Field: "status", Message: "must be APPROVED, REJECTED or MERGED"})
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("pull_request_id", input.PullRequestID).
		Str("target_status", string(input.Status)).
		Msg("updating pull request status")

	var pr *domain.PullRequest
	mergedFiles := 0

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		existing, err := tx.PullRequestRepo().GetByID(ctx, input.PullRequestID)
		if err != nil {
			return err
		}
		if input.ProjectID != "" && existing.ProjectID != input.ProjectID {
			return storage.ErrNotFound
		}

		project, err := tx.ProjectRepo().GetByID(ctx, existing.ProjectID)
		if err != nil {
			return err
		}
		if project.OwnerID != input.ReviewerID {
			return domain.ErrNotProjectOwner
		}

		if existing.Status.Terminal() {
			return domain.ErrPullRequestClosed
		}
		if !existing.Status.CanTransitionTo(input.Status) {
			return domain.ErrPullRequestTransition
		}

		at := now()
		if err := tx.PullRequestRepo().UpdateStatus(ctx, existing.ID,
			domain.PullRequestSourceStates(input.Status), input.Status, input.ReviewerID, at); err != nil {
			return err
		}

		if input.Status == domain.PullRequestStatusMerged {
			mergedFiles, err = s.mergePullRequest(ctx, tx, existing.ID, at)
			if err != nil {
				log.Error().
					Err(err).
					Str("request_id", requestID).
					Str("layer", "service").
					Str("pull_request_id", existing.ID).
					Msg("merge failed, rolling back status change")
				metrics.ErrorsTotal.WithLabelValues("merge", "service").Inc()
				return domain.ErrInternal
			}
		}

		pr, err = tx.PullRequestRepo().GetByID(ctx, existing.ID)
		if err != nil {
			return err
		}
		pr.Files, err = tx.PullRequestRepo().ListFiles(ctx, existing.ID, false)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.PRStatusChangedTotal.WithLabelValues(string(pr.Status)).Inc()
	if pr.Status == domain.PullRequestStatusMerged {
		metrics.PRMergedFilesTotal.Add(float64(mergedFiles))
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("pull_request_id", pr.ID).
		Str("status", string(pr.Status)).
		Int("merged_files", mergedFiles).
		Msg("successfully updated pull request status")

	return pr, nil
}

// mergePullRequest переносит временные файлы PR в постоянное хранилище проекта
// и очищает staging. Вызывается внутри транзакции смены статуса.
func (s *Service) mergePullRequest(ctx context.Context, tx storage.Tx, pullRequestID string, at time.Time) (int, error) {
	requestID := logger.GetRequestID(ctx)
	start := time.Now()
	defer func() {
		metrics.PRMergeDuration.Observe(time.Since(start).Seconds())
	}()

	pr, err := tx.PullRequestRepo().GetByID(ctx, pullRequestID)
	if err != nil {
		return 0, err
	}

	// changesPreview не применяется к содержимому: переносятся только загруженные файлы
	if err := tx.ProjectRepo().Touch(ctx, pr.ProjectID, at); err != nil {
		return 0, err
	}

	staged, err := tx.PullRequestRepo().ListFiles(ctx, pr.ID, true)
	if err != nil {
		return 0, err
	}

	for _, f := range staged {
		file := &domain.ProjectFile{
			ProjectID:  pr.ProjectID,
			FileName:   f.FileName,
			FilePath:   f.FilePath,
			FileType:   f.FileType,
			FileSize:   f.FileSize,
			Content:    f.Content,
			IsArchive:  f.IsArchive,
			UploadedBy: pr.AuthorID,
		}
		if err := persistProjectFile(ctx, tx, file); err != nil {
			return 0, err
		}
	}

	deleted, err := tx.PullRequestRepo().DeleteFiles(ctx, pr.ID)
	if err != nil {
		return 0, err
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("pull_request_id", pr.ID).
		Int("migrated_files", len(staged)).
		Int("cleaned_files", deleted).
		Msg("pull request files migrated to project")

	return len(staged), nil
}

// GetProjectPullRequests возвращает PR проекта владельцу и участникам
func (s *Service) GetProjectPullRequests(outerCtx context.Context, projectID, callerID string) ([]domain.PullRequest, error) {
	const op = "service.GetProjectPullRequests"
	var prs []domain.PullRequest

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if !access.member() {
			return domain.ErrNoProjectAccess
		}

		prs, err = tx.PullRequestRepo().ListByProject(ctx, projectID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return prs, nil
}

// GetPullRequest возвращает PR с метаданными временных файлов
func (s *Service) GetPullRequest(outerCtx context.Context, projectID, pullRequestID, callerID string) (*domain.PullRequest, error) {
	const op = "service.GetPullRequest"
	var pr *domain.PullRequest

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if !access.member() {
			return domain.ErrNoProjectAccess
		}

		pr, err = tx.PullRequestRepo().GetByID(ctx, pullRequestID)
		if err != nil {
			return err
		}
		if pr.ProjectID != projectID {
			return storage.ErrNotFound
		}

		pr.Files, err = tx.PullRequestRepo().ListFiles(ctx, pullRequestID, false)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return pr, nil
}

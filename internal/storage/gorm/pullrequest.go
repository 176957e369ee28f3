package gorm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/logger"
	"sharexconnect/internal/storage"
)

type pullRequestRepository struct {
	db *gorm.DB
}

// NewPullRequestRepository создаёт новый репозиторий PR
func NewPullRequestRepository(db *gorm.DB) storage.PullRequestRepository {
	return &pullRequestRepository{db: db}
}

// Create создаёт новый pull request
func (r *pullRequestRepository) Create(ctx context.Context, pr *domain.PullRequest) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("pull_request_id", pr.ID).
		Msg("creating pull request in database")

	filesChanged := pr.FilesChanged
	if filesChanged == nil {
		filesChanged = []string{}
	}

	dbPR := &PullRequest{
		ID:             pr.ID,
		ProjectID:      pr.ProjectID,
		AuthorID:       pr.AuthorID,
		Title:          pr.Title,
		Description:    pr.Description,
		BranchName:     pr.BranchName,
		FilesChanged:   datatypes.JSONSlice[string](filesChanged),
		ChangesPreview: pr.ChangesPreview,
		Status:         string(pr.Status),
	}

	if err := r.db.WithContext(ctx).Omit("Author").Create(dbPR).Error; err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Str("pull_request_id", pr.ID).
				Msg("pull request already exists")
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("pull_request_id", pr.ID).
			Msg("error creating pull request")
		return err
	}

	pr.CreatedAt = dbPR.CreatedAt
	pr.UpdatedAt = dbPR.UpdatedAt

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("pull_request_id", pr.ID).
		Msg("successfully created pull request")

	return nil
}

// GetByID получает pull request по ID вместе с автором
func (r *pullRequestRepository) GetByID(ctx context.Context, pullRequestID string) (*domain.PullRequest, error) {
	var dbPR PullRequest
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&dbPR, "id = ?", pullRequestID).Error
	if err != nil {
		return nil, notFound(err)
	}
	pr := dbPR.toDomain()
	return &pr, nil
}

// ListByProject возвращает PR проекта в порядке создания
func (r *pullRequestRepository) ListByProject(ctx context.Context, projectID string) ([]domain.PullRequest, error) {
	var dbPRs []PullRequest
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&dbPRs).Error
	if err != nil {
		return nil, err
	}

	prs := make([]domain.PullRequest, len(dbPRs))
	for i := range dbPRs {
		prs[i] = dbPRs[i].toDomain()
	}
	return prs, nil
}

// UpdateStatus меняет статус PR, если текущий статус входит в from.
// Для MERGED дополнительно проставляется merged_at.
func (r *pullRequestRepository) UpdateStatus(ctx context.Context, pullRequestID string, from []domain.PullRequestStatus, to domain.PullRequestStatus, reviewerID string, at time.Time) error {
	requestID := logger.GetRequestID(ctx)

	fromStatuses := make([]string, len(from))
	for i, s := range from {
		fromStatuses[i] = string(s)
	}

	updates := map[string]interface{}{
		"status":      string(to),
		"reviewer_id": reviewerID,
		"reviewed_at": at,
		"updated_at":  at,
	}
	if to == domain.PullRequestStatusMerged {
		updates["merged_at"] = at
	}

	result := r.db.WithContext(ctx).
		Model(&PullRequest{}).
		Where("id = ? AND status IN ?", pullRequestID, fromStatuses).
		Updates(updates)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("pull_request_id", pullRequestID).
			Msg("error updating pull request status")
		return result.Error
	}

	if result.RowsAffected == 0 {
		log.Warn().
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("pull_request_id", pullRequestID).
			Str("target_status", string(to)).
			Msg("pull request status changed concurrently")
		return storage.ErrConflict
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("pull_request_id", pullRequestID).
		Str("status", string(to)).
		Msg("successfully updated pull request status")

	return nil
}

// AddFile прикрепляет временный файл к PR
func (r *pullRequestRepository) AddFile(ctx context.Context, file *domain.PullRequestFile) error {
	dbFile := &PullRequestFile{
		ID:            file.ID,
		PullRequestID: file.PullRequestID,
		FileName:      file.FileName,
		FilePath:      file.FilePath,
		FileType:      file.FileType,
		FileSize:      file.FileSize,
		Content:       file.Content,
		IsArchive:     file.IsArchive,
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

// ListFiles возвращает файлы PR в порядке загрузки
func (r *pullRequestRepository) ListFiles(ctx context.Context, pullRequestID string, withContent bool) ([]domain.PullRequestFile, error) {
	query := r.db.WithContext(ctx).
		Where("pull_request_id = ?", pullRequestID).
		Order("created_at ASC, id ASC")
	if !withContent {
		query = query.Omit("content")
	}

	var dbFiles []PullRequestFile
	if err := query.Find(&dbFiles).Error; err != nil {
		return nil, err
	}

	files := make([]domain.PullRequestFile, len(dbFiles))
	for i := range dbFiles {
		files[i] = dbFiles[i].toDomain()
	}
	return files, nil
}

// DeleteFiles удаляет все временные файлы PR
func (r *pullRequestRepository) DeleteFiles(ctx context.Context, pullRequestID string) (int, error) {
	result := r.db.WithContext(ctx).
		Where("pull_request_id = ?", pullRequestID).
		Delete(&PullRequestFile{})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

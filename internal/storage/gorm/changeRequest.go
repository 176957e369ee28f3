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

type changeRequestRepository struct {
	db *gorm.DB
}

// NewChangeRequestRepository создаёт новый репозиторий предложений изменений
func NewChangeRequestRepository(db *gorm.DB) storage.ChangeRequestRepository {
	return &changeRequestRepository{db: db}
}

// Create сохраняет предложение изменения
func (r *changeRequestRepository) Create(ctx context.Context, cr *domain.ChangeRequest) error {
	dbCR := &ChangeRequest{
		ID:              cr.ID,
		ProjectID:       cr.ProjectID,
		RequesterID:     cr.RequesterID,
		Title:           cr.Title,
		Description:     cr.Description,
		ChangeType:      string(cr.ChangeType),
		FileID:          cr.FileID,
		ProposedChanges: cr.ProposedChanges,
		Status:          string(cr.Status),
	}

	if err := r.db.WithContext(ctx).Create(dbCR).Error; err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return storage.ErrInvalidReference
		}
		return err
	}

	cr.CreatedAt = dbCR.CreatedAt
	return nil
}

// GetByID получает предложение по ID
func (r *changeRequestRepository) GetByID(ctx context.Context, id string) (*domain.ChangeRequest, error) {
	var dbCR ChangeRequest
	if err := r.db.WithContext(ctx).First(&dbCR, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	cr := dbCR.toDomain()
	return &cr, nil
}

// ListByProject возвращает предложения проекта, новые первыми
func (r *changeRequestRepository) ListByProject(ctx context.Context, projectID string) ([]domain.ChangeRequest, error) {
	var dbCRs []ChangeRequest
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&dbCRs).Error
	if err != nil {
		return nil, err
	}

	crs := make([]domain.ChangeRequest, len(dbCRs))
	for i := range dbCRs {
		crs[i] = dbCRs[i].toDomain()
	}
	return crs, nil
}

// Review переводит предложение из OPEN в итоговый статус
func (r *changeRequestRepository) Review(ctx context.Context, id string, status domain.ChangeRequestStatus, reviewerID string, at time.Time) error {
	requestID := logger.GetRequestID(ctx)

	result := r.db.WithContext(ctx).
		Model(&ChangeRequest{}).
		Where("id = ? AND status = ?", id, string(domain.ChangeRequestStatusOpen)).
		Updates(map[string]interface{}{
			"status":      string(status),
			"reviewer_id": reviewerID,
			"reviewed_at": at,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		log.Warn().
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("change_request_id", id).
			Msg("change request is not open")
		return storage.ErrConflict
	}

	return nil
}

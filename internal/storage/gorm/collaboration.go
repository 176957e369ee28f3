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

type collaborationRequestRepository struct {
	db *gorm.DB
}

// NewCollaborationRequestRepository создаёт новый репозиторий заявок на участие
func NewCollaborationRequestRepository(db *gorm.DB) storage.CollaborationRequestRepository {
	return &collaborationRequestRepository{db: db}
}

// Create сохраняет новую заявку или приглашение
func (r *collaborationRequestRepository) Create(ctx context.Context, req *domain.CollaborationRequest) error {
	requestID := logger.GetRequestID(ctx)

	dbReq := &CollaborationRequest{
		ID:        req.ID,
		ProjectID: req.ProjectID,
		Type:      string(req.Type),
		PartyID:   req.PartyID,
		SenderID:  req.SenderID,
		Message:   req.Message,
		Status:    string(req.Status),
	}

	if err := r.db.WithContext(ctx).Create(dbReq).Error; err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return storage.ErrInvalidReference
		}
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("project_id", req.ProjectID).
			Str("type", string(req.Type)).
			Msg("error creating collaboration request")
		return err
	}

	req.CreatedAt = dbReq.CreatedAt

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("collaboration_request_id", req.ID).
		Str("type", string(req.Type)).
		Msg("successfully created collaboration request")

	return nil
}

// GetByID получает заявку по ID
func (r *collaborationRequestRepository) GetByID(ctx context.Context, id string) (*domain.CollaborationRequest, error) {
	var dbReq CollaborationRequest
	if err := r.db.WithContext(ctx).First(&dbReq, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	req := dbReq.toDomain()
	return &req, nil
}

// HasPending проверяет, есть ли ожидающая заявка того же типа от той же стороны
func (r *collaborationRequestRepository) HasPending(ctx context.Context, projectID, partyID string, reqType domain.CollaborationRequestType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CollaborationRequest{}).
		Where("project_id = ? AND party_id = ? AND type = ? AND status = ?",
			projectID, partyID, string(reqType), string(domain.CollaborationStatusPending)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Resolve переводит заявку из PENDING в итоговый статус.
// Условие по статусу в WHERE не даёт двум ответам пройти одновременно.
func (r *collaborationRequestRepository) Resolve(ctx context.Context, id string, status domain.CollaborationStatus, responderID string, at time.Time) error {
	requestID := logger.GetRequestID(ctx)

	result := r.db.WithContext(ctx).
		Model(&CollaborationRequest{}).
		Where("id = ? AND status = ?", id, string(domain.CollaborationStatusPending)).
		Updates(map[string]interface{}{
			"status":       string(status),
			"responder_id": responderID,
			"responded_at": at,
		})
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("collaboration_request_id", id).
			Msg("error resolving collaboration request")
		return result.Error
	}

	if result.RowsAffected == 0 {
		log.Warn().
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("collaboration_request_id", id).
			Msg("collaboration request is not pending")
		return storage.ErrConflict
	}

	return nil
}

// ListPendingRequests возвращает ожидающие заявки типа REQUEST
func (r *collaborationRequestRepository) ListPendingRequests(ctx context.Context, projectID string) ([]domain.CollaborationRequest, error) {
	var dbReqs []CollaborationRequest
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND type = ? AND status = ?",
			projectID, string(domain.CollaborationTypeRequest), string(domain.CollaborationStatusPending)).
		Order("created_at ASC").
		Find(&dbReqs).Error
	if err != nil {
		return nil, err
	}
	return collaborationRequestsToDomain(dbReqs), nil
}

// ListInvitationsFor возвращает все приглашения пользователя в проект
func (r *collaborationRequestRepository) ListInvitationsFor(ctx context.Context, projectID, inviteeID string) ([]domain.CollaborationRequest, error) {
	var dbReqs []CollaborationRequest
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND type = ? AND party_id = ?",
			projectID, string(domain.CollaborationTypeInvitation), inviteeID).
		Order("created_at ASC").
		Find(&dbReqs).Error
	if err != nil {
		return nil, err
	}
	return collaborationRequestsToDomain(dbReqs), nil
}

func collaborationRequestsToDomain(dbReqs []CollaborationRequest) []domain.CollaborationRequest {
	reqs := make([]domain.CollaborationRequest, len(dbReqs))
	for i := range dbReqs {
		reqs[i] = dbReqs[i].toDomain()
	}
	return reqs
}
